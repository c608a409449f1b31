package ui

import (
	"codedeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// logPagerMsg contains the result of a log pager run
type logPagerMsg struct {
	err error
}

// statusMsg updates the status bar text
type statusMsg struct {
	text  string
	isErr bool
}
