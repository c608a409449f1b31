package eventbus

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedeck/internal/domain"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Fail(t, "condition never became true")
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Stop()

	var got atomic.Value
	b.Subscribe(EventCommandInvoked, func(e DomainEvent) {
		got.Store(e.(CommandInvokedEvent).CommandID)
	})

	b.Publish(CommandInvokedEvent{CommandID: "workbench.openSettings"})

	waitFor(t, func() bool { return got.Load() != nil })
	assert.Equal(t, "workbench.openSettings", got.Load())
}

func TestSubscribersAreFilteredByType(t *testing.T) {
	b := New()
	defer b.Stop()

	var tabEvents atomic.Int32
	b.Subscribe(EventTabOpened, func(DomainEvent) { tabEvents.Add(1) })

	b.Publish(PromptOpenedEvent{OptionCount: 3})
	b.Publish(TabOpenedEvent{TabID: "t1", Title: "main.go"})

	waitFor(t, func() bool { return tabEvents.Load() == 1 })
	// The prompt event must not have been delivered to the tab subscriber
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), tabEvents.Load())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Stop()

	var count atomic.Int32
	unsub := b.Subscribe(EventPromptClosed, func(DomainEvent) { count.Add(1) })

	b.Publish(PromptClosedEvent{})
	waitFor(t, func() bool { return count.Load() == 1 })

	unsub()
	b.Publish(PromptClosedEvent{})
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load())
}

func TestHandlerPanicDoesNotKillDispatch(t *testing.T) {
	b := New()
	defer b.Stop()

	var delivered atomic.Int32
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { delivered.Add(1) })

	b.Publish(domain.ErrorEvent{Message: "first"})
	b.Publish(domain.ErrorEvent{Message: "second"})

	waitFor(t, func() bool { return delivered.Load() == 2 })
}
