package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"codedeck/internal/ui/input/types"
)

type SettingsMode struct{}

func NewSettingsMode() *SettingsMode {
	return &SettingsMode{}
}

func (m *SettingsMode) Name() string {
	return "settings"
}

func (m *SettingsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{
			types.CloseSettingsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyDown:
		return []types.Action{types.SettingsNavigateAction{Delta: 1}}, true

	case tea.KeyUp:
		return []types.Action{types.SettingsNavigateAction{Delta: -1}}, true

	case tea.KeyEnter, tea.KeySpace:
		return []types.Action{types.SettingsToggleAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.SettingsNavigateAction{Delta: 1}}, true

	case "k":
		return []types.Action{types.SettingsNavigateAction{Delta: -1}}, true

	case "q":
		return []types.Action{
			types.CloseSettingsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}
