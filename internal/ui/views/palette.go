package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"codedeck/internal/ui/prompt"
)

// maxPaletteItems caps how many options are shown at once; the cursor
// always stays visible by scrolling the window.
const maxPaletteItems = 8

// PaletteRenderer draws the command palette modal
type PaletteRenderer struct {
	styles *Styles
}

// NewPaletteRenderer creates a palette renderer
func NewPaletteRenderer(styles *Styles) *PaletteRenderer {
	return &PaletteRenderer{styles: styles}
}

// Render builds the palette box content
func (pr *PaletteRenderer) Render(state ViewState) string {
	width := state.Width/2 - 4
	if width < 30 {
		width = 30
	}

	var b strings.Builder
	b.WriteString(pr.styles.PaletteInput.Render(state.FilterInput))
	b.WriteString("\n")

	if len(state.Options) == 0 {
		b.WriteString(pr.styles.PaletteEmpty.Render(state.EmptyMessage))
	} else {
		start := 0
		if state.Cursor >= maxPaletteItems {
			start = state.Cursor - maxPaletteItems + 1
		}
		end := start + maxPaletteItems
		if end > len(state.Options) {
			end = len(state.Options)
		}

		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, pr.renderItem(state.Options[i], i == state.Cursor, width))
		}
		b.WriteString(strings.Join(lines, "\n"))

		if end < len(state.Options) {
			b.WriteString("\n")
			b.WriteString(pr.styles.Dim.Render("…"))
		}
	}

	if state.RecentHint != "" {
		b.WriteString("\n")
		b.WriteString(pr.styles.PaletteRecent.Render(state.RecentHint))
	}

	return pr.styles.PaletteBox.Width(width + 2).Render(b.String())
}

func (pr *PaletteRenderer) renderItem(opt prompt.TranslatedOption, selected bool, width int) string {
	text := runewidth.Truncate(opt.Text, width, "…")
	if selected {
		return pr.styles.PaletteCursor.Render("> " + text)
	}
	return pr.styles.PaletteItem.Render("  " + text)
}
