package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarRenderer draws the bottom status line
type StatusBarRenderer struct {
	styles *Styles
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(styles *Styles) *StatusBarRenderer {
	return &StatusBarRenderer{styles: styles}
}

// Render draws mode, tab count and the latest status message
func (sb *StatusBarRenderer) Render(state ViewState) string {
	parts := []string{sb.styles.Title.Render(state.Title)}

	if state.ModeLabel != "" {
		parts = append(parts, sb.styles.Status.Render("["+state.ModeLabel+"]"))
	}
	if state.TabSummary != "" {
		parts = append(parts, sb.styles.Status.Render(state.TabSummary))
	}
	if state.StatusMessage != "" {
		style := sb.styles.Status
		if state.StatusIsError {
			style = sb.styles.StatusError
		}
		parts = append(parts, style.Render(state.StatusMessage))
	}

	line := strings.Join(parts, "  ")
	if w := lipgloss.Width(line); w < state.Width {
		line += strings.Repeat(" ", state.Width-w)
	}
	return line
}
