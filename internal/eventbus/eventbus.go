package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"codedeck/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPromptOpened   = domain.EventPromptOpened
	EventPromptClosed   = domain.EventPromptClosed
	EventCommandInvoked = domain.EventCommandInvoked
	EventTabOpened      = domain.EventTabOpened
	EventTabClosed      = domain.EventTabClosed
	EventTabActivated   = domain.EventTabActivated
	EventViewsChanged   = domain.EventViewsChanged
	EventStateSaved     = domain.EventStateSaved
	EventConfigLoaded   = domain.EventConfigLoaded
	EventConfigSaved    = domain.EventConfigSaved
	EventLocaleChanged  = domain.EventLocaleChanged
	EventError          = domain.EventError
)

// Re-export domain event types
type PromptOpenedEvent = domain.PromptOpenedEvent
type PromptClosedEvent = domain.PromptClosedEvent
type CommandInvokedEvent = domain.CommandInvokedEvent
type TabOpenedEvent = domain.TabOpenedEvent
type TabClosedEvent = domain.TabClosedEvent
type TabActivatedEvent = domain.TabActivatedEvent
type ViewsChangedEvent = domain.ViewsChangedEvent
type StateSavedEvent = domain.StateSavedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type LocaleChangedEvent = domain.LocaleChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Stop()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    int
	handlers  map[EventType][]subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	stopOnce  sync.Once
}

// New creates a new event bus and starts its dispatch goroutine
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Printf("eventbus: channel full, dropping event %s", event.Type())
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Stop shuts down the dispatch goroutine, discarding queued events
func (b *bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so the lock isn't held during handler execution
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				func(h EventHandler) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("eventbus: handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
						}
					}()
					h(event)
				}(s.handler)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
