package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedeck/internal/i18n"
)

// identityTranslator resolves descriptors to their raw key text
type identityTranslator struct{}

func (identityTranslator) Translate(d i18n.Descriptor) string { return d.Text }

func options(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{ID: l, Label: i18n.T(l)}
	}
	return opts
}

func newTestController() (*Controller, *Stack) {
	stack := NewStack()
	return NewController(identityTranslator{}, stack), stack
}

func TestOpenResetsFilterAndCursor(t *testing.T) {
	c, stack := newTestController()

	c.Open(options("Open File", "Save"))
	c.SetFilter("save")
	c.MoveDown()

	c.Open(options("Open File", "Save"))
	assert.Equal(t, "", c.Filter())
	assert.Equal(t, 0, c.Cursor())
	assert.Len(t, c.Filtered(), 2)
	assert.Equal(t, 1, stack.Len())
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	c, _ := newTestController()
	c.Open(options("Open File", "Open Folder", "Save", "Close Editor"))

	c.SetFilter("OPEN")
	require.Len(t, c.Filtered(), 2)
	assert.Equal(t, "Open File", c.Filtered()[0].Text)
	assert.Equal(t, "Open Folder", c.Filtered()[1].Text)

	c.SetFilter("os")
	require.Len(t, c.Filtered(), 1)
	assert.Equal(t, "Close Editor", c.Filtered()[0].Text)

	c.SetFilter("")
	assert.Len(t, c.Filtered(), 4)
}

func TestSetFilterResetsCursor(t *testing.T) {
	c, _ := newTestController()
	c.Open(options("a1", "a2", "a3"))

	c.MoveDown()
	c.MoveDown()
	require.Equal(t, 2, c.Cursor())

	c.SetFilter("a")
	assert.Equal(t, 0, c.Cursor())
}

func TestCursorClampsDoesNotWrap(t *testing.T) {
	c, _ := newTestController()
	c.Open(options("one", "two"))

	c.MoveUp()
	assert.Equal(t, 0, c.Cursor())

	c.MoveDown()
	c.MoveDown()
	c.MoveDown()
	assert.Equal(t, 1, c.Cursor())
}

func TestSubmitInvokesExactlyTheSelectedOption(t *testing.T) {
	c, _ := newTestController()

	var invoked []string
	opts := options("first", "second")
	for i := range opts {
		id := opts[i].ID
		opts[i].OnSelected = func(SelectContext) { invoked = append(invoked, id) }
	}
	c.Open(opts)

	c.MoveDown()
	require.True(t, c.Submit())
	assert.Equal(t, []string{"second"}, invoked)
}

func TestSubmitOnEmptyListIsNoop(t *testing.T) {
	c, _ := newTestController()
	c.Open(options("alpha"))

	c.SetFilter("zzz")
	require.Empty(t, c.Filtered())
	assert.False(t, c.Submit())
	assert.Equal(t, 0, c.Cursor())
}

func TestCloseIsIdempotent(t *testing.T) {
	c, stack := newTestController()
	c.Open(options("one"))
	require.Equal(t, 1, stack.Len())

	c.Close()
	assert.Equal(t, 0, stack.Len())
	assert.False(t, c.IsOpen())

	c.Close()
	assert.Equal(t, 0, stack.Len())
}

func TestClosePromptCapabilityClosesSession(t *testing.T) {
	c, stack := newTestController()

	opts := options("quit")
	opts[0].OnSelected = func(ctx SelectContext) { ctx.ClosePrompt() }
	c.Open(opts)

	require.True(t, c.Submit())
	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, stack.Len())
}

func TestCallbackMayKeepPromptOpen(t *testing.T) {
	c, stack := newTestController()

	opts := options("stay")
	opts[0].OnSelected = func(SelectContext) {}
	c.Open(opts)

	require.True(t, c.Submit())
	assert.True(t, c.IsOpen())
	assert.Equal(t, 1, stack.Len())
}

func TestCallbackPanicLeavesStateValid(t *testing.T) {
	c, _ := newTestController()

	opts := options("boom", "other")
	opts[0].OnSelected = func(SelectContext) { panic("callback failure") }
	c.Open(opts)
	c.SetFilter("o")

	require.Panics(t, func() { c.Submit() })

	// Cursor and filter are untouched and still valid
	assert.Equal(t, "o", c.Filter())
	assert.Equal(t, 0, c.Cursor())
	assert.True(t, c.IsOpen())
	require.NotEmpty(t, c.Filtered())
	assert.True(t, c.Cursor() < len(c.Filtered()))
}

func TestTranslationDegradesToRawKey(t *testing.T) {
	stack := NewStack()
	c := NewController(i18n.NewTranslator("en"), stack)

	c.Open([]Option{{Label: i18n.T("command.open_settings")}, {Label: i18n.T("no.such.key")}})

	require.Len(t, c.Filtered(), 2)
	assert.Equal(t, "Open Settings", c.Filtered()[0].Text)
	assert.Equal(t, "no.such.key", c.Filtered()[1].Text)
}

func TestFilterMatchesTranslatedText(t *testing.T) {
	stack := NewStack()
	c := NewController(i18n.NewTranslator("en"), stack)

	c.Open([]Option{
		{ID: "settings", Label: i18n.T("command.open_settings")},
		{ID: "quit", Label: i18n.T("command.quit")},
	})

	// "settings" matches the translated text, not the key
	c.SetFilter("open se")
	require.Len(t, c.Filtered(), 1)
	assert.Equal(t, "settings", c.Filtered()[0].Option.ID)
}

func TestRefreshAfterLocaleSwitch(t *testing.T) {
	stack := NewStack()
	tr := i18n.NewTranslator("en")
	c := NewController(tr, stack)

	c.Open([]Option{{Label: i18n.T("command.quit")}})
	assert.Equal(t, "Quit", c.Filtered()[0].Text)

	require.NoError(t, tr.SetLocale("es"))
	c.Refresh()
	assert.Equal(t, "Salir", c.Filtered()[0].Text)
}

// The scenario from the interaction model: type "open", arrow down,
// enter selects "Open Folder".
func TestOpenFolderScenario(t *testing.T) {
	c, _ := newTestController()

	var fired []string
	opts := options("Open File", "Open Folder", "Save")
	for i := range opts {
		id := opts[i].ID
		opts[i].OnSelected = func(SelectContext) { fired = append(fired, id) }
	}
	c.Open(opts)

	c.SetFilter("open")
	require.Len(t, c.Filtered(), 2)
	assert.Equal(t, "Open File", c.Filtered()[0].Text)
	assert.Equal(t, "Open Folder", c.Filtered()[1].Text)
	assert.Equal(t, 0, c.Cursor())

	c.MoveDown()
	assert.Equal(t, 1, c.Cursor())

	require.True(t, c.Submit())
	assert.Equal(t, []string{"Open Folder"}, fired)
}

func TestStackOnChangeNotifications(t *testing.T) {
	c, stack := newTestController()

	var changes int
	unsub := stack.OnChange(func() { changes++ })

	c.Open(options("x"))
	assert.Equal(t, 1, changes)

	c.Close()
	assert.Equal(t, 2, changes)

	unsub()
	c.Open(options("x"))
	assert.Equal(t, 2, changes)
}

func TestStackTopAndPop(t *testing.T) {
	stack := NewStack()
	a := NewController(identityTranslator{}, stack)
	b := NewController(identityTranslator{}, stack)

	a.Open(options("a"))
	b.Open(options("b"))
	assert.Equal(t, 2, stack.Len())
	assert.Same(t, b, stack.Top())

	// Closing the top reveals the one below
	b.Close()
	assert.Same(t, a, stack.Top())

	assert.Same(t, a, stack.Pop())
	assert.Nil(t, stack.Top())
	assert.Nil(t, stack.Pop())
}
