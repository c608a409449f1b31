// Package prompt implements the command palette interaction model: a
// borrowed option list, a live text filter and a single selection
// cursor. Key handling reads controller state directly, so there is a
// single source of truth and no listener re-registration.
package prompt

import (
	"strings"

	"codedeck/internal/i18n"
)

// Translator resolves option labels to display text
type Translator interface {
	Translate(d i18n.Descriptor) string
}

// SelectContext is handed to an option's OnSelected callback
type SelectContext struct {
	ClosePrompt func()
}

// Option is one palette entry. Options are immutable and borrowed from
// the caller for the lifetime of the prompt session.
type Option struct {
	ID         string
	Label      i18n.Descriptor
	OnSelected func(SelectContext)
}

// TranslatedOption pairs an option with its resolved display text
type TranslatedOption struct {
	Option Option
	Text   string
}

// Controller owns the filter text and selection cursor of one palette
// session. Invariant: 0 <= cursor < len(filtered) whenever the filtered
// list is non-empty.
type Controller struct {
	translator Translator
	stack      *Stack

	options  []Option
	filter   string
	filtered []TranslatedOption
	cursor   int
	open     bool
}

// NewController creates a controller bound to a translator and a stack
func NewController(translator Translator, stack *Stack) *Controller {
	return &Controller{translator: translator, stack: stack}
}

// Open mounts the prompt: resets filter and cursor, takes the option
// list and pushes the controller onto the stack.
func (c *Controller) Open(options []Option) {
	c.options = options
	c.filter = ""
	c.cursor = 0
	c.refilter()
	if !c.open {
		c.open = true
		if c.stack != nil {
			c.stack.Push(c)
		}
	}
}

// IsOpen reports whether the prompt is mounted
func (c *Controller) IsOpen() bool {
	return c.open
}

// Filter returns the current filter text
func (c *Controller) Filter() string {
	return c.filter
}

// Filtered returns the translated options matching the current filter
func (c *Controller) Filtered() []TranslatedOption {
	return c.filtered
}

// Cursor returns the selection cursor index
func (c *Controller) Cursor() int {
	return c.cursor
}

// Selected returns the option under the cursor, if any
func (c *Controller) Selected() (TranslatedOption, bool) {
	if len(c.filtered) == 0 {
		return TranslatedOption{}, false
	}
	return c.filtered[c.cursor], true
}

// SetFilter updates the filter text, recomputes the filtered list and
// resets the cursor to the top.
func (c *Controller) SetFilter(text string) {
	c.filter = text
	c.cursor = 0
	c.refilter()
}

// Refresh retranslates and refilters the options in place, e.g. after a
// locale switch. The cursor is clamped, not reset.
func (c *Controller) Refresh() {
	c.refilter()
	if c.cursor > len(c.filtered)-1 {
		c.cursor = len(c.filtered) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// MoveDown advances the cursor, clamping at the end of the list
func (c *Controller) MoveDown() {
	if c.cursor < len(c.filtered)-1 {
		c.cursor++
	}
}

// MoveUp retreats the cursor, clamping at the top
func (c *Controller) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// Submit invokes the selected option's callback with a close
// capability. On an empty filtered list it is a no-op. Callback panics
// are the caller's responsibility and are not caught here; controller
// state stays valid either way.
func (c *Controller) Submit() bool {
	selected, ok := c.Selected()
	if !ok {
		return false
	}
	if selected.Option.OnSelected != nil {
		selected.Option.OnSelected(SelectContext{ClosePrompt: c.Close})
	}
	return true
}

// Close unmounts the prompt by removing it from the stack. Idempotent.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	if c.stack != nil {
		c.stack.Remove(c)
	}
}

// refilter recomputes the translated, filtered option list.
// Matching is a case-insensitive substring test on the translated
// display text; no fuzzy scoring.
func (c *Controller) refilter() {
	needle := strings.ToLower(c.filter)
	c.filtered = c.filtered[:0]
	for _, opt := range c.options {
		text := opt.Label.Text
		if c.translator != nil {
			text = c.translator.Translate(opt.Label)
		}
		if needle == "" || strings.Contains(strings.ToLower(text), needle) {
			c.filtered = append(c.filtered, TranslatedOption{Option: opt, Text: text})
		}
	}
}
