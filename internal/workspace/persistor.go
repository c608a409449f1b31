package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Persistor stores workspace state between sessions
type Persistor interface {
	Load() (StateData, error)
	Save(data *StateData) error
}

// MemoryPersistor keeps state in memory only. Useful for tests and
// for running without a workspace file.
type MemoryPersistor struct {
	mu    sync.Mutex
	data  StateData
	saves int
}

// NewMemoryPersistor creates an empty in-memory persistor
func NewMemoryPersistor() *MemoryPersistor {
	return &MemoryPersistor{}
}

// Load returns the last saved state
func (p *MemoryPersistor) Load() (StateData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Clone(), nil
}

// Save stores the state in memory
func (p *MemoryPersistor) Save(data *StateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = data.Clone()
	p.saves++
	return nil
}

// SaveCount reports how many times Save has been called
func (p *MemoryPersistor) SaveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

// FilePersistor stores state as a JSON file
type FilePersistor struct {
	path string
}

// NewFilePersistor creates a persistor writing to the given file
func NewFilePersistor(path string) *FilePersistor {
	return &FilePersistor{path: path}
}

// Load reads the state file; a missing file yields an empty state
func (p *FilePersistor) Load() (StateData, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return StateData{}, nil
		}
		return StateData{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var state StateData
	if err := json.Unmarshal(data, &state); err != nil {
		return StateData{}, fmt.Errorf("failed to parse state file: %w", err)
	}
	return state, nil
}

// Save writes the state file, creating parent directories as needed
func (p *FilePersistor) Save(state *StateData) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
