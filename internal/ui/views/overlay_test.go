package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeOverlayCentersPopup(t *testing.T) {
	base := strings.TrimRight(strings.Repeat("abcdefghij\n", 12), "\n")
	popup := "PP\nPP"

	composed, rect := composeOverlay(base, popup, 10, 12, lipgloss.NewStyle())

	assert.Equal(t, 4, rect.X)
	assert.Equal(t, 2, rect.W)
	assert.Equal(t, 2, rect.H)

	lines := strings.Split(composed, "\n")
	require.Greater(t, len(lines), rect.Y+1)
	assert.Contains(t, lines[rect.Y], "PP")
	// The backdrop text survives around the popup
	assert.True(t, strings.HasPrefix(stripANSI(lines[rect.Y]), "abcd"))
	assert.True(t, strings.HasSuffix(stripANSI(lines[rect.Y]), "ghij"))
}

func TestComposeOverlayPadsShortBase(t *testing.T) {
	composed, rect := composeOverlay("one line", "XX", 20, 10, lipgloss.NewStyle())
	lines := strings.Split(composed, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[rect.Y], "XX")
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 3))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(1, 3))
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "cdef", truncateLeft("abcdef", 2))
	assert.Equal(t, "abcdef", truncateLeft("abcdef", 0))
	assert.Equal(t, "", truncateLeft("ab", 5))
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1mbold\x1b[0m"
	assert.Equal(t, "bold", stripANSI(styled))
}
