package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen-space box, used for backdrop hit-testing
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether a cell position falls inside the box
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// composeOverlay centers popup over base. The backdrop is flattened to
// dim plain text so the modal reads as the only active surface. Returns
// the composed screen and the popup's box for hit-testing.
func composeOverlay(base, popup string, width, height int, backdrop lipgloss.Style) (string, Rect) {
	popupLines := strings.Split(popup, "\n")
	pw := lipgloss.Width(popup)
	ph := len(popupLines)

	x := (width - pw) / 2
	if x < 0 {
		x = 0
	}
	y := (height - ph) / 3 // slightly above center, like most palettes
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := stripANSI(line)
		if i < y || i >= y+ph {
			out[i] = backdrop.Render(plain)
			continue
		}

		left := runewidth.Truncate(plain, x, "")
		if pad := x - runewidth.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := truncateLeft(plain, x+pw)
		out[i] = backdrop.Render(left) + popupLines[i-y] + backdrop.Render(right)
	}

	return strings.Join(out, "\n"), Rect{X: x, Y: y, W: pw, H: ph}
}

// truncateLeft drops the first cols columns of a plain string
func truncateLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	w := 0
	for i, r := range s {
		if w >= cols {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}
