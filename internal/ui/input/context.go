package input

import "codedeck/internal/ui/prompt"

// ModelContext adapts model state for the input mode handlers
type ModelContext struct {
	Stack    *prompt.Stack
	Palette  *prompt.Controller
	Settings int
	Tabs     int
}

func (c *ModelContext) PromptDepth() int {
	if c.Stack == nil {
		return 0
	}
	return c.Stack.Len()
}

func (c *ModelContext) PaletteLength() int {
	if c.Palette == nil {
		return 0
	}
	return len(c.Palette.Filtered())
}

func (c *ModelContext) SettingCount() int {
	return c.Settings
}

func (c *ModelContext) TabCount() int {
	return c.Tabs
}
