package types

type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type OpenPaletteAction struct{}

func (a OpenPaletteAction) Type() string { return "open_palette" }

type ClosePromptAction struct{}

func (a ClosePromptAction) Type() string { return "close_prompt" }

type PaletteNavigateAction struct {
	Delta int
}

func (a PaletteNavigateAction) Type() string { return "palette_navigate" }

type PaletteSubmitAction struct{}

func (a PaletteSubmitAction) Type() string { return "palette_submit" }

type UpdateFilterAction struct {
	Text string
}

func (a UpdateFilterAction) Type() string { return "update_filter" }

type OpenSettingsAction struct{}

func (a OpenSettingsAction) Type() string { return "open_settings" }

type CloseSettingsAction struct{}

func (a CloseSettingsAction) Type() string { return "close_settings" }

type SettingsNavigateAction struct {
	Delta int
}

func (a SettingsNavigateAction) Type() string { return "settings_navigate" }

type SettingsToggleAction struct{}

func (a SettingsToggleAction) Type() string { return "settings_toggle" }

type NewTabAction struct{}

func (a NewTabAction) Type() string { return "new_tab" }

type CloseTabAction struct{}

func (a CloseTabAction) Type() string { return "close_tab" }

type CycleTabAction struct {
	Delta int
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

type FocusPanelAction struct {
	Delta int
}

func (a FocusPanelAction) Type() string { return "focus_panel" }

type SplitPanelAction struct{}

func (a SplitPanelAction) Type() string { return "split_panel" }

type OpenLogAction struct{}

func (a OpenLogAction) Type() string { return "open_log" }

type SaveWorkspaceAction struct{}

func (a SaveWorkspaceAction) Type() string { return "save_workspace" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
