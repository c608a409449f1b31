package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedeck/internal/domain"
	"codedeck/internal/i18n"
	"codedeck/internal/ui/prompt"
)

func workbenchState() ViewState {
	return ViewState{
		Width:  80,
		Height: 24,
		Title:  "codedeck",
		Views: domain.Views{{domain.Panel{
			Tabs:      []domain.Tab{{ID: "1", Title: "main.go"}, {ID: "2", Title: "state.go"}},
			ActiveTab: 0,
		}}},
		ShowStatusBar: true,
		ModeLabel:     "NORMAL",
		TabSummary:    "2 tabs",
	}
}

func TestRenderWorkbenchShowsTabsAndStatus(t *testing.T) {
	r := NewRenderer()
	out := stripANSI(r.Render(workbenchState()))

	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "state.go")
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "2 tabs")
	assert.Equal(t, Rect{}, r.PaletteRect())
}

func TestRenderPaletteOverlay(t *testing.T) {
	r := NewRenderer()
	state := workbenchState()
	state.PaletteOpen = true
	state.FilterInput = "> open"
	state.Options = []prompt.TranslatedOption{
		{Text: "Open File", Option: prompt.Option{ID: "open.file"}},
		{Text: "Open Folder", Option: prompt.Option{ID: "open.folder"}},
	}
	state.Cursor = 1

	out := stripANSI(r.Render(state))
	assert.Contains(t, out, "Open File")
	assert.Contains(t, out, "> Open Folder", "cursor marker on the selected item")

	rect := r.PaletteRect()
	require.NotEqual(t, Rect{}, rect)
	assert.Greater(t, rect.W, 10)
}

func TestRenderPaletteEmptyMessage(t *testing.T) {
	r := NewRenderer()
	state := workbenchState()
	state.PaletteOpen = true
	state.EmptyMessage = "No matching commands"

	out := stripANSI(r.Render(state))
	assert.Contains(t, out, "No matching commands")
}

func TestRenderSettingsOverlay(t *testing.T) {
	r := NewRenderer()
	state := workbenchState()
	state.SettingsOpen = true
	state.SettingsTitle = "Settings"
	state.Settings = []SettingItem{
		{Label: "Show status bar", Value: "on"},
		{Label: "Show tab numbers", Value: "off"},
	}
	state.SettingsCursor = 1

	out := stripANSI(r.Render(state))
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Show status bar")
	assert.Contains(t, out, "> Show tab numbers")
}

func TestRenderTabNumbers(t *testing.T) {
	r := NewRenderer()
	state := workbenchState()
	state.ShowTabNumbers = true

	out := stripANSI(r.Render(state))
	assert.Contains(t, out, "1:main.go")
}

func TestPaletteWindowFollowsCursor(t *testing.T) {
	pr := NewPaletteRenderer(NewStyles())
	state := ViewState{Width: 80}
	for i := 0; i < 20; i++ {
		state.Options = append(state.Options, prompt.TranslatedOption{Text: strings.Repeat("x", 3) + string(rune('a'+i))})
	}
	state.Cursor = 15

	out := stripANSI(pr.Render(state))
	assert.Contains(t, out, "> xxx"+string(rune('a'+15)))
	assert.NotContains(t, out, "xxxa\n", "items far above the cursor scroll out")
}

func TestSettingItemFromConfigIsPlainData(t *testing.T) {
	// Settings rows are typed label/value pairs resolved through i18n
	tr := i18n.NewTranslator("en")
	item := SettingItem{Label: tr.Translate(i18n.T("settings.show_status_bar")), Value: "on"}
	assert.Equal(t, "Show status bar", item.Label)
}
