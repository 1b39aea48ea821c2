package traybridge

import "sync"

// EventType identifies the kind of UI event reported by the bridge.
type EventType uint8

const (
	// EventNone is the empty-queue sentinel. It is never enqueued; PollEvent
	// returns it when there is nothing to drain.
	EventNone EventType = iota
	// EventTrayClicked reports a primary activation of the tray icon.
	EventTrayClicked
	// EventTrayDoubleClicked reports a double activation of the tray icon.
	EventTrayDoubleClicked
	// EventMenuItemClicked reports a context-menu item trigger. MenuID carries
	// the identifier the item was registered with.
	EventMenuItemClicked
)

// Event is a discrete UI event drained from the bridge via PollEvent.
//
// Only EventMenuItemClicked carries a non-empty MenuID. The MenuID is a
// fresh copy per trigger, so each drained event is independent of the
// registration that produced it.
type Event struct {
	Type   EventType
	MenuID string
}

// ActivationReason is the kind of user interaction that hit the tray icon.
type ActivationReason uint8

const (
	// ActivationUnknown covers platform-specific reasons the bridge ignores.
	ActivationUnknown ActivationReason = iota
	// ActivationContext is a context-menu request (typically right-click).
	// The toolkit consumes it to show the menu; the bridge enqueues nothing.
	ActivationContext
	// ActivationTrigger is a primary activation (typically left-click).
	ActivationTrigger
	// ActivationDoubleClick is a double activation.
	ActivationDoubleClick
)

// eventQueue is the FIFO shared between the toolkit goroutine (enqueue) and
// host goroutines (drain). Both sides take the mutex: the toolkit callback
// appending and a foreign thread polling can run concurrently.
type eventQueue struct {
	mu     sync.Mutex
	events []Event
}

// push appends an event at the tail. Called only from toolkit callback
// context.
func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// pop removes and returns the head event, or the EventNone sentinel when
// the queue is empty. Never blocks.
func (q *eventQueue) pop() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{Type: EventNone}
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}

// size reports the number of queued events.
func (q *eventQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
