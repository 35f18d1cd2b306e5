package ecs

import "github.com/milk9111/ohko/fighter"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventStateChanged = "state_changed"
	EventHit          = "hit"
)

// StateChange is emitted when a character ends a tick in a different state.
type StateChange struct {
	Entity Entity
	From   fighter.StateID
	To     fighter.StateID
}

// Hit is emitted when one entity's hit region overlaps another's hurt region.
type Hit struct {
	Attacker         Entity
	Target           Entity
	DamageMultiplier float64
}

// EventQueue is a simple FIFO queue. Events live for one scheduler update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without removing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
