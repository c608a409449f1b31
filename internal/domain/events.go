package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPromptOpened   EventType = "PromptOpened"
	EventPromptClosed   EventType = "PromptClosed"
	EventCommandInvoked EventType = "CommandInvoked"
	EventTabOpened      EventType = "TabOpened"
	EventTabClosed      EventType = "TabClosed"
	EventTabActivated   EventType = "TabActivated"
	EventViewsChanged   EventType = "ViewsChanged"
	EventStateSaved     EventType = "StateSaved"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventLocaleChanged  EventType = "LocaleChanged"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PromptOpenedEvent is emitted when a command palette is pushed onto the stack
type PromptOpenedEvent struct {
	OptionCount int
}

func (e PromptOpenedEvent) Type() EventType { return EventPromptOpened }

// PromptClosedEvent is emitted when the top prompt is popped
type PromptClosedEvent struct{}

func (e PromptClosedEvent) Type() EventType { return EventPromptClosed }

// CommandInvokedEvent is emitted when a palette command runs
type CommandInvokedEvent struct {
	CommandID string
}

func (e CommandInvokedEvent) Type() EventType { return EventCommandInvoked }

// TabOpenedEvent is emitted when a tab is added to a panel
type TabOpenedEvent struct {
	TabID string
	Title string
}

func (e TabOpenedEvent) Type() EventType { return EventTabOpened }

// TabClosedEvent is emitted when a tab is removed
type TabClosedEvent struct {
	TabID string
}

func (e TabClosedEvent) Type() EventType { return EventTabClosed }

// TabActivatedEvent is emitted when the active tab of a panel changes
type TabActivatedEvent struct {
	TabID string
}

func (e TabActivatedEvent) Type() EventType { return EventTabActivated }

// ViewsChangedEvent is emitted after any mutation of the workbench layout
type ViewsChangedEvent struct {
	Views Views
}

func (e ViewsChangedEvent) Type() EventType { return EventViewsChanged }

// StateSavedEvent is emitted after the workspace state is persisted
type StateSavedEvent struct {
	StateID string
}

func (e StateSavedEvent) Type() EventType { return EventStateSaved }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Locale string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// LocaleChangedEvent is emitted when the active locale switches
type LocaleChangedEvent struct {
	Locale string
}

func (e LocaleChangedEvent) Type() EventType { return EventLocaleChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
