package views

import (
	"strings"
)

// SettingItem is one row of the settings screen: typed data, no
// templated markup.
type SettingItem struct {
	Label string
	Value string
}

// SettingsRenderer draws the settings modal
type SettingsRenderer struct {
	styles *Styles
}

// NewSettingsRenderer creates a settings renderer
func NewSettingsRenderer(styles *Styles) *SettingsRenderer {
	return &SettingsRenderer{styles: styles}
}

// Render builds the settings box content
func (sr *SettingsRenderer) Render(state ViewState) string {
	var b strings.Builder
	b.WriteString(sr.styles.SettingsTitle.Render(state.SettingsTitle))
	b.WriteString("\n\n")

	for i, item := range state.Settings {
		line := item.Label + "  " + sr.styles.SettingValue.Render(item.Value)
		if i == state.SettingsCursor {
			b.WriteString(sr.styles.SettingCursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return sr.styles.SettingsBox.Render(strings.TrimRight(b.String(), "\n"))
}
