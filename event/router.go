package event

// Handler processes routed events
// Systems implement this interface to receive events of their declared types
type Handler interface {
	HandleEvent(ev GameEvent)
	EventTypes() []EventType
}

// Router dispatches drained events to registered handlers
// Handlers are invoked in registration order, all handlers of one event before the next event
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll drains the queue and routes every event
// Events raised by handlers during dispatch are delivered in the same call
// Returns the drained events so callers can inspect them after routing
func (r *Router) DispatchAll() []GameEvent {
	var all []GameEvent
	for {
		events := r.queue.Consume()
		if len(events) == 0 {
			return all
		}
		all = append(all, events...)
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
