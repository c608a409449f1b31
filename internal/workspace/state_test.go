package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedeck/internal/domain"
)

func TestNewAssignsIDAndDefaultLayout(t *testing.T) {
	s := New(NewMemoryPersistor(), nil)
	assert.NotEmpty(t, s.ID())

	data := s.Data()
	require.Len(t, data.Views, 1)
	require.Len(t, data.Views[0], 1)
}

func TestUpdateSavesOnlyOnDiff(t *testing.T) {
	p := NewMemoryPersistor()
	s := New(p, nil)

	// Identical data: no save
	require.NoError(t, s.Update(s.Data()))
	assert.Equal(t, 0, p.SaveCount())

	// Changed commands: saved once
	data := s.Data()
	data.Commands = []string{"workbench.quit"}
	require.NoError(t, s.Update(data))
	assert.Equal(t, 1, p.SaveCount())

	// Same again: no extra save
	require.NoError(t, s.Update(s.Data()))
	assert.Equal(t, 1, p.SaveCount())
}

func TestUpdateNotifiesSubscribers(t *testing.T) {
	s := New(NewMemoryPersistor(), nil)

	var seen []StateData
	unsub := s.Subscribe(func(d StateData) { seen = append(seen, d) })

	_, err := s.OpenTab("main.go", "/tmp/main.go")
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "main.go", seen[0].Views[0][0].Tabs[0].Title)

	unsub()
	_, err = s.OpenTab("other.go", "")
	require.NoError(t, err)
	assert.Len(t, seen, 1)
}

func TestOpenCloseActivateTab(t *testing.T) {
	s := New(NewMemoryPersistor(), nil)

	first, err := s.OpenTab("first", "")
	require.NoError(t, err)
	second, err := s.OpenTab("second", "")
	require.NoError(t, err)

	active, ok := s.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)

	found, err := s.ActivateTab(first.ID)
	require.NoError(t, err)
	require.True(t, found)
	active, _ = s.ActiveTab()
	assert.Equal(t, first.ID, active.ID)

	found, err = s.CloseTab(first.ID)
	require.NoError(t, err)
	require.True(t, found)
	active, ok = s.ActiveTab()
	require.True(t, ok)
	assert.Equal(t, second.ID, active.ID)

	found, _ = s.CloseTab("no-such-tab")
	assert.False(t, found)
}

func TestCycleTabClamps(t *testing.T) {
	s := New(NewMemoryPersistor(), nil)
	_, err := s.OpenTab("a", "")
	require.NoError(t, err)
	_, err = s.OpenTab("b", "")
	require.NoError(t, err)

	require.NoError(t, s.CycleTab(1)) // already at the end, stays
	active, _ := s.ActiveTab()
	assert.Equal(t, "b", active.Title)

	require.NoError(t, s.CycleTab(-1))
	active, _ = s.ActiveTab()
	assert.Equal(t, "a", active.Title)

	require.NoError(t, s.CycleTab(-1)) // clamped at 0
	active, _ = s.ActiveTab()
	assert.Equal(t, "a", active.Title)
}

func TestSplitPanelFocusesNewPanel(t *testing.T) {
	s := New(NewMemoryPersistor(), nil)
	require.NoError(t, s.SplitPanel())

	data := s.Data()
	assert.Len(t, data.Views[0], 2)

	_, col := s.ActivePanelIndex()
	assert.Equal(t, 1, col)

	s.FocusPanel(-1)
	_, col = s.ActivePanelIndex()
	assert.Equal(t, 0, col)

	s.FocusPanel(-1) // clamped
	_, col = s.ActivePanelIndex()
	assert.Equal(t, 0, col)
}

func TestFilePersistorRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "workspace.json")
	p := NewFilePersistor(path)

	s := New(p, nil)
	tab, err := s.OpenTab("main.go", "/src/main.go")
	require.NoError(t, err)

	reloaded := New(NewFilePersistor(path), nil)
	assert.Equal(t, s.ID(), reloaded.ID())

	data := reloaded.Data()
	require.Len(t, data.Views[0][0].Tabs, 1)
	assert.Equal(t, tab.ID, data.Views[0][0].Tabs[0].ID)
}

func TestFilePersistorMissingFileIsEmpty(t *testing.T) {
	p := NewFilePersistor(filepath.Join(t.TempDir(), "none.json"))
	data, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, data.ID)
}

func TestViewsEqual(t *testing.T) {
	a := domain.Views{{domain.Panel{Tabs: []domain.Tab{{ID: "1", Title: "x"}}}}}
	b := domain.Views{{domain.Panel{Tabs: []domain.Tab{{ID: "1", Title: "x"}}}}}
	assert.True(t, a.Equal(b))

	b[0][0].Tabs[0].Title = "y"
	assert.False(t, a.Equal(b))
}
