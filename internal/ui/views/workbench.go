package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codedeck/internal/domain"
)

// WorkbenchRenderer draws the tab bars and view panels
type WorkbenchRenderer struct {
	styles *Styles
}

// NewWorkbenchRenderer creates a workbench renderer
func NewWorkbenchRenderer(styles *Styles) *WorkbenchRenderer {
	return &WorkbenchRenderer{styles: styles}
}

// Render draws all panel rows side by side
func (wr *WorkbenchRenderer) Render(state ViewState) string {
	if len(state.Views) == 0 {
		return wr.styles.Dim.Render("no views")
	}

	rows := make([]string, 0, len(state.Views))
	rowHeight := (state.Height - 2) / len(state.Views)
	if rowHeight < 4 {
		rowHeight = 4
	}

	for i, row := range state.Views {
		panels := make([]string, 0, len(row))
		panelWidth := state.Width/maxInt(len(row), 1) - 2
		if panelWidth < 16 {
			panelWidth = 16
		}
		for j, panel := range row {
			focused := i == state.ActiveRow && j == state.ActiveCol
			panels = append(panels, wr.renderPanel(panel, focused, panelWidth, rowHeight, state.ShowTabNumbers))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (wr *WorkbenchRenderer) renderPanel(panel domain.Panel, focused bool, width, height int, showNumbers bool) string {
	var b strings.Builder
	b.WriteString(wr.renderTabBar(panel, showNumbers))
	b.WriteString("\n")
	b.WriteString(wr.renderBody(panel, width))

	border := wr.styles.PanelBorder
	if focused {
		border = wr.styles.PanelFocused
	}
	return border.Width(width).Height(height).Render(b.String())
}

func (wr *WorkbenchRenderer) renderTabBar(panel domain.Panel, showNumbers bool) string {
	if len(panel.Tabs) == 0 {
		return wr.styles.Dim.Render("(empty)")
	}

	tabs := make([]string, 0, len(panel.Tabs))
	for i, tab := range panel.Tabs {
		title := tab.Title
		if showNumbers {
			title = fmt.Sprintf("%d:%s", i+1, title)
		}
		if tab.Edited {
			title += " " + wr.styles.TabEdited.Render("●")
		}
		if i == panel.ActiveTab {
			tabs = append(tabs, wr.styles.TabActive.Render(title))
		} else {
			tabs = append(tabs, wr.styles.Tab.Render(title))
		}
	}
	return wr.styles.TabBar.Render(strings.Join(tabs, ""))
}

func (wr *WorkbenchRenderer) renderBody(panel domain.Panel, width int) string {
	active := panel.ActiveTab
	if active < 0 || active >= len(panel.Tabs) {
		return ""
	}
	tab := panel.Tabs[active]
	if tab.Path == "" {
		return wr.styles.Dim.Render(tab.Title)
	}
	return wr.styles.Dim.Render(tab.Path)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
