package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codedeck/internal/ui/input/types"
)

// PaletteMode drives the command palette. Arrow keys and enter are
// translated to navigation/submit actions; everything else falls
// through to the shared text input, which feeds the filter.
type PaletteMode struct {
	textInput *textinput.Model
}

func NewPaletteMode(ti *textinput.Model) *PaletteMode {
	return &PaletteMode{textInput: ti}
}

func (m *PaletteMode) Name() string {
	return "palette"
}

func (m *PaletteMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
	}
	return nil
}

func (m *PaletteMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *PaletteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{
			types.ClosePromptAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyDown:
		return []types.Action{types.PaletteNavigateAction{Delta: 1}}, true

	case tea.KeyUp:
		return []types.Action{types.PaletteNavigateAction{Delta: -1}}, true

	case tea.KeyCtrlN:
		return []types.Action{types.PaletteNavigateAction{Delta: 1}}, true

	case tea.KeyCtrlP:
		return []types.Action{types.PaletteNavigateAction{Delta: -1}}, true

	case tea.KeyEnter:
		return []types.Action{types.PaletteSubmitAction{}}, true
	}

	// Let the handler route the key into the text input
	return nil, false
}
