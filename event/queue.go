package event

import "github.com/lixenwraith/light-blaster/parameter"

// EventQueue collects events raised during a tick
// Single-threaded: producers and the consumer all run on the simulation goroutine
type EventQueue struct {
	pending []GameEvent
	spare   []GameEvent
	frame   int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueInitialCapacity),
		spare:   make([]GameEvent, 0, parameter.EventQueueInitialCapacity),
	}
}

// SetFrame stamps subsequently pushed events with the frame number
func (q *EventQueue) SetFrame(frame int64) {
	q.frame = frame
}

// Push appends an event stamped with the current frame
func (q *EventQueue) Push(t EventType, payload any) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, GameEvent{Type: t, Payload: payload, Frame: q.frame})
}

// Sound is shorthand for pushing a sound request
func (q *EventQueue) Sound(s SoundType) {
	q.Push(EventSoundRequest, &SoundRequestPayload{Sound: s})
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is valid until the next Consume call
func (q *EventQueue) Consume() []GameEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	return len(q.pending)
}
