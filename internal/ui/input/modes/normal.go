package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"codedeck/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlP:
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModePalette},
			types.OpenPaletteAction{},
		}, true

	case tea.KeyLeft:
		return []types.Action{types.CycleTabAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case tea.KeyTab:
		return []types.Action{types.CycleTabAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CycleTabAction{Delta: -1}}, true
	}

	switch msg.String() {
	case ":", "p":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModePalette},
			types.OpenPaletteAction{},
		}, true

	case ",":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeSettings},
			types.OpenSettingsAction{},
		}, true

	case "h":
		return []types.Action{types.FocusPanelAction{Delta: -1}}, true

	case "l":
		return []types.Action{types.FocusPanelAction{Delta: 1}}, true

	case "n":
		return []types.Action{types.NewTabAction{}}, true

	case "x":
		if ctx.TabCount() == 0 {
			return nil, false
		}
		return []types.Action{types.CloseTabAction{}}, true

	case "|":
		return []types.Action{types.SplitPanelAction{}}, true

	case "L":
		return []types.Action{types.OpenLogAction{}}, true

	case "w":
		return []types.Action{types.SaveWorkspaceAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
