package engine

import "github.com/lixenwraith/kataster/event"

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before World.UpdateLocked()
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// Router dispatches events to registered handlers
//   - Single-threaded dispatch, no concurrency issues with World mutation
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[event.EventType][]EventHandler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[event.EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// GetHandlers returns the handlers registered for the given type
func (r *Router) GetHandlers(t event.EventType) ([]EventHandler, bool) {
	h, ok := r.handlers[t]
	return h, ok
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
