// Package workspace holds the tab/view-panel state of the workbench and
// persists it through a pluggable persistor.
package workspace

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"codedeck/internal/domain"
	"codedeck/internal/eventbus"
)

// StateData is the persisted shape of a workspace
type StateData struct {
	ID       string       `json:"id"`
	Views    domain.Views `json:"views"`
	Commands []string     `json:"commands"`
}

// Clone returns a deep copy of the state data
func (d StateData) Clone() StateData {
	out := StateData{ID: d.ID}
	if d.Views != nil {
		out.Views = make(domain.Views, len(d.Views))
		for i, row := range d.Views {
			out.Views[i] = make([]domain.Panel, len(row))
			for j, panel := range row {
				tabs := make([]domain.Tab, len(panel.Tabs))
				copy(tabs, panel.Tabs)
				out.Views[i][j] = domain.Panel{Tabs: tabs, ActiveTab: panel.ActiveTab}
			}
		}
	}
	if d.Commands != nil {
		out.Commands = make([]string, len(d.Commands))
		copy(out.Commands, d.Commands)
	}
	return out
}

func commandsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// State owns the live workspace data. Updates are diff-checked: the
// persistor is only written when views or commands actually changed.
type State struct {
	mu        sync.Mutex
	data      StateData
	persistor Persistor
	bus       eventbus.EventBus

	subs   map[int]func(StateData)
	nextID int

	// active panel position within the layout
	activeRow int
	activeCol int
}

// New loads state from the persistor and assigns an id when missing
func New(persistor Persistor, bus eventbus.EventBus) *State {
	s := &State{
		persistor: persistor,
		bus:       bus,
		subs:      make(map[int]func(StateData)),
	}

	if persistor != nil {
		data, err := persistor.Load()
		if err != nil {
			log.Printf("workspace: loading state: %v", err)
		} else {
			s.data = data
		}
	}

	if s.data.ID == "" {
		s.data.ID = uuid.NewString()
	}
	if len(s.data.Views) == 0 {
		s.data.Views = domain.Views{{domain.Panel{}}}
	}

	return s
}

// ID returns the workspace id
func (s *State) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ID
}

// Data returns a copy of the current state data
func (s *State) Data() StateData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Subscribe registers a callback notified after every applied update.
// Returns an unsubscribe function.
func (s *State) Subscribe(fn func(StateData)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Update merges new state data. The persistor is only written when the
// views or the command list changed.
func (s *State) Update(newData StateData) error {
	s.mu.Lock()

	anyDiff := !s.data.Views.Equal(newData.Views) ||
		!commandsEqual(s.data.Commands, newData.Commands)

	if !anyDiff {
		s.mu.Unlock()
		return nil
	}

	newData.ID = s.data.ID
	s.data = newData.Clone()
	s.clampActive()

	var err error
	if s.persistor != nil {
		err = s.persistor.Save(&s.data)
	} else {
		log.Printf("workspace: no persistor for state %q, could not save", s.data.ID)
	}

	snapshot := s.data.Clone()
	subs := make([]func(StateData), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ViewsChangedEvent{Views: snapshot.Views})
		if err == nil && s.persistor != nil {
			s.bus.Publish(eventbus.StateSavedEvent{StateID: snapshot.ID})
		}
	}

	return err
}

// Save persists the current data unconditionally
func (s *State) Save() error {
	s.mu.Lock()
	if s.persistor == nil {
		s.mu.Unlock()
		log.Printf("workspace: no persistor for state %q, could not save", s.data.ID)
		return nil
	}
	err := s.persistor.Save(&s.data)
	id := s.data.ID
	s.mu.Unlock()

	if err == nil && s.bus != nil {
		s.bus.Publish(eventbus.StateSavedEvent{StateID: id})
	}
	return err
}

// RegisterCommands replaces the registered command list
func (s *State) RegisterCommands(ids []string) error {
	data := s.Data()
	data.Commands = append([]string(nil), ids...)
	return s.Update(data)
}

// OpenTab adds a tab to the active panel and activates it
func (s *State) OpenTab(title, path string) (domain.Tab, error) {
	if title == "" {
		title = "untitled"
	}
	tab := domain.Tab{ID: uuid.NewString(), Title: title, Path: path}

	data := s.Data()
	row, col := s.activePos()
	panel := &data.Views[row][col]
	panel.Tabs = append(panel.Tabs, tab)
	panel.ActiveTab = len(panel.Tabs) - 1

	if err := s.Update(data); err != nil {
		return tab, err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.TabOpenedEvent{TabID: tab.ID, Title: tab.Title})
	}
	return tab, nil
}

// CloseTab removes the tab with the given id from whichever panel holds it
func (s *State) CloseTab(id string) (bool, error) {
	data := s.Data()
	for i := range data.Views {
		for j := range data.Views[i] {
			panel := &data.Views[i][j]
			for k, tab := range panel.Tabs {
				if tab.ID != id {
					continue
				}
				panel.Tabs = append(panel.Tabs[:k], panel.Tabs[k+1:]...)
				if panel.ActiveTab >= len(panel.Tabs) {
					panel.ActiveTab = len(panel.Tabs) - 1
				}
				if panel.ActiveTab < 0 {
					panel.ActiveTab = 0
				}
				err := s.Update(data)
				if err == nil && s.bus != nil {
					s.bus.Publish(eventbus.TabClosedEvent{TabID: id})
				}
				return true, err
			}
		}
	}
	return false, nil
}

// ActivateTab makes the tab with the given id active in its panel
func (s *State) ActivateTab(id string) (bool, error) {
	data := s.Data()
	for i := range data.Views {
		for j := range data.Views[i] {
			panel := &data.Views[i][j]
			for k, tab := range panel.Tabs {
				if tab.ID == id {
					panel.ActiveTab = k
					err := s.Update(data)
					if err == nil && s.bus != nil {
						s.bus.Publish(eventbus.TabActivatedEvent{TabID: id})
					}
					return true, err
				}
			}
		}
	}
	return false, nil
}

// CycleTab moves the active tab of the active panel by delta, clamped
func (s *State) CycleTab(delta int) error {
	data := s.Data()
	row, col := s.activePos()
	panel := &data.Views[row][col]
	if len(panel.Tabs) == 0 {
		return nil
	}

	next := panel.ActiveTab + delta
	if next < 0 {
		next = 0
	}
	if next > len(panel.Tabs)-1 {
		next = len(panel.Tabs) - 1
	}
	panel.ActiveTab = next

	err := s.Update(data)
	if err == nil && s.bus != nil {
		s.bus.Publish(eventbus.TabActivatedEvent{TabID: panel.ActiveTabID()})
	}
	return err
}

// SplitPanel appends an empty panel to the active row and focuses it
func (s *State) SplitPanel() error {
	data := s.Data()
	row, _ := s.activePos()
	data.Views[row] = append(data.Views[row], domain.Panel{})

	if err := s.Update(data); err != nil {
		return err
	}

	s.mu.Lock()
	s.activeCol = len(s.data.Views[row]) - 1
	s.mu.Unlock()
	return nil
}

// FocusPanel moves panel focus by delta within the active row, clamped
func (s *State) FocusPanel(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.activeCol + delta
	if next < 0 {
		next = 0
	}
	if max := len(s.data.Views[s.activeRow]) - 1; next > max {
		next = max
	}
	s.activeCol = next
}

// ActivePanelIndex returns the focused panel position
func (s *State) ActivePanelIndex() (row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeRow, s.activeCol
}

// ActiveTab returns the active tab of the focused panel, if any
func (s *State) ActiveTab() (domain.Tab, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	panel := s.data.Views[s.activeRow][s.activeCol]
	if panel.ActiveTab < 0 || panel.ActiveTab >= len(panel.Tabs) {
		return domain.Tab{}, false
	}
	return panel.Tabs[panel.ActiveTab], true
}

func (s *State) activePos() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeRow, s.activeCol
}

// clampActive keeps the focus inside the layout after updates.
// Caller must hold s.mu.
func (s *State) clampActive() {
	if s.activeRow > len(s.data.Views)-1 {
		s.activeRow = len(s.data.Views) - 1
	}
	if s.activeRow < 0 {
		s.activeRow = 0
	}
	row := s.data.Views[s.activeRow]
	if s.activeCol > len(row)-1 {
		s.activeCol = len(row) - 1
	}
	if s.activeCol < 0 {
		s.activeCol = 0
	}
}
