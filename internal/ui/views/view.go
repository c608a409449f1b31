package views

import (
	"strings"

	"codedeck/internal/domain"
	"codedeck/internal/ui/prompt"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	// Workbench
	Views          domain.Views
	ActiveRow      int
	ActiveCol      int
	ShowTabNumbers bool

	// Status bar
	ShowStatusBar bool
	ModeLabel     string
	TabSummary    string
	StatusMessage string
	StatusIsError bool

	// Palette
	PaletteOpen  bool
	FilterInput  string
	Options      []prompt.TranslatedOption
	Cursor       int
	EmptyMessage string
	RecentHint   string

	// Settings
	SettingsOpen   bool
	SettingsTitle  string
	Settings       []SettingItem
	SettingsCursor int
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	workbench *WorkbenchRenderer
	palette   *PaletteRenderer
	settings  *SettingsRenderer
	statusBar *StatusBarRenderer

	lastPaletteRect Rect
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		workbench: NewWorkbenchRenderer(styles),
		palette:   NewPaletteRenderer(styles),
		settings:  NewSettingsRenderer(styles),
		statusBar: NewStatusBarRenderer(styles),
	}
}

// PaletteRect returns the screen box of the palette from the last
// render; the zero Rect when the palette was not shown.
func (r *Renderer) PaletteRect() Rect {
	return r.lastPaletteRect
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	base := r.workbench.Render(state)
	if state.ShowStatusBar {
		base = base + "\n" + r.statusBar.Render(state)
	}

	switch {
	case state.PaletteOpen:
		popup := r.palette.Render(state)
		composed, rect := composeOverlay(base, popup, state.Width, state.Height, r.styles.Backdrop)
		r.lastPaletteRect = rect
		return composed

	case state.SettingsOpen:
		r.lastPaletteRect = Rect{}
		popup := r.settings.Render(state)
		composed, _ := composeOverlay(base, popup, state.Width, state.Height, r.styles.Backdrop)
		return composed

	default:
		r.lastPaletteRect = Rect{}
		// Avoid pushing the status bar off screen on tiny terminals
		if state.Height > 0 {
			lines := strings.Split(base, "\n")
			if len(lines) > state.Height {
				lines = lines[:state.Height]
			}
			base = strings.Join(lines, "\n")
		}
		return base
	}
}
