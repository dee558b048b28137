package event

import "github.com/1pavlov/vibecoded-kids-games/parameter"

// EventQueue is a fixed ring buffer of game events
// Single-threaded: the tick pushes, presentation drains between ticks
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest unread one when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Emit pushes an event stamped with frame
func (eq *EventQueue) Emit(t EventType, payload any, frame int64) {
	eq.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		out = append(out, eq.events[i&parameter.EventBufferMask])
		eq.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	eq.head = eq.tail
	return out
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
