package telemetryx

import (
	"sync"

	"github.com/Abraxas-365/livex/pkg/logx"
)

// attachment is one handler bound to one event under a handler id.
type attachment struct {
	id  string
	fn  HandlerFunc
	cfg interface{}
}

// Registry owns handler state for the bus. Handlers are keyed by a caller
// chosen id: re-attaching under the same id replaces the previous
// attachment instead of duplicating it.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Event][]attachment
	byID     map[string][]Event
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[Event][]attachment),
		byID:     make(map[string][]Event),
	}
}

// Attach binds fn to every event in events under handlerID. cfg is passed
// back to fn on every invocation. Attaching an id that already exists
// replaces its previous attachments.
func (r *Registry) Attach(handlerID string, events []Event, fn HandlerFunc, cfg interface{}) error {
	if len(events) == 0 {
		return busErrors.New(ErrNoEvents).WithDetail("handler_id", handlerID)
	}
	if fn == nil {
		return busErrors.New(ErrNilHandler).WithDetail("handler_id", handlerID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.detachLocked(handlerID)

	for _, ev := range events {
		r.handlers[ev] = append(r.handlers[ev], attachment{id: handlerID, fn: fn, cfg: cfg})
	}
	r.byID[handlerID] = append([]Event(nil), events...)
	return nil
}

// Detach removes every attachment registered under handlerID.
// Detaching an unknown id is a no-op.
func (r *Registry) Detach(handlerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detachLocked(handlerID)
}

func (r *Registry) detachLocked(handlerID string) {
	events, ok := r.byID[handlerID]
	if !ok {
		return
	}
	for _, ev := range events {
		kept := r.handlers[ev][:0]
		for _, a := range r.handlers[ev] {
			if a.id != handlerID {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			delete(r.handlers, ev)
		} else {
			r.handlers[ev] = kept
		}
	}
	delete(r.byID, handlerID)
}

// Handlers returns the ids attached to an event, in attach order.
func (r *Registry) Handlers(event Event) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.handlers[event]))
	for _, a := range r.handlers[event] {
		ids = append(ids, a.id)
	}
	return ids
}

// Execute emits an event to every attached handler, in attach order.
// A panicking handler is recovered and logged; emission never raises
// back into the caller and is never retried.
func (r *Registry) Execute(event Event, measurements Measurements, metadata Metadata) {
	r.mu.RLock()
	attached := r.handlers[event]
	snapshot := make([]attachment, len(attached))
	copy(snapshot, attached)
	r.mu.RUnlock()

	for _, a := range snapshot {
		r.invoke(a, event, measurements, metadata)
	}
}

func (r *Registry) invoke(a attachment, event Event, measurements Measurements, metadata Metadata) {
	defer func() {
		if rec := recover(); rec != nil {
			logx.WithFields(logx.Fields{
				"handler_id": a.id,
				"event":      string(event),
				"panic":      rec,
			}).Warn("telemetry handler panicked")
		}
	}()
	a.fn(event, measurements, metadata, a.cfg)
}
