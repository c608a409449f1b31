package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	TabBar         lipgloss.Style
	Tab            lipgloss.Style
	TabActive      lipgloss.Style
	TabEdited      lipgloss.Style
	PanelBorder    lipgloss.Style
	PanelFocused   lipgloss.Style
	PaletteBox     lipgloss.Style
	PaletteInput   lipgloss.Style
	PaletteItem    lipgloss.Style
	PaletteCursor  lipgloss.Style
	PaletteEmpty   lipgloss.Style
	PaletteRecent  lipgloss.Style
	SettingsBox    lipgloss.Style
	SettingsTitle  lipgloss.Style
	SettingValue   lipgloss.Style
	SettingCursor  lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	Backdrop       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TabBar: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Tab:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabEdited: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")),
		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		PaletteInput:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		PaletteItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PaletteCursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		PaletteEmpty:  lipgloss.NewStyle().Faint(true).Italic(true),
		PaletteRecent: lipgloss.NewStyle().Faint(true),
		SettingsBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		SettingsTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		SettingValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		SettingCursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Backdrop:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
