// Package telemetryx is a process-wide instrumentation bus: producers emit
// named events carrying measurements and metadata, and any number of
// independently attached handlers receive them.
//
// Emission is fire-and-forget. A panicking handler is recovered and logged;
// it never raises back into the code path that emitted the event.
package telemetryx

import (
	"time"
)

// Event is the dotted name of an instrumentation event,
// e.g. "livex.view.mount.start".
type Event string

// Measurements carries the numeric/timing payload of an event.
type Measurements map[string]interface{}

// Metadata carries contextual identifiers for an event (socket, params,
// session, event name). Values are opaque to the bus.
type Metadata map[string]interface{}

// HandlerFunc is invoked for every emitted event it is attached to.
// cfg is the configuration value supplied at attach time.
//
// Handlers may be invoked concurrently from many emitting goroutines and
// must not block beyond the cost of handing the event off.
type HandlerFunc func(event Event, measurements Measurements, metadata Metadata, cfg interface{})

// Duration reads a duration measurement, returning 0 when absent or of an
// unexpected type.
func (m Measurements) Duration(key string) time.Duration {
	d, _ := m[key].(time.Duration)
	return d
}

// Time reads a time measurement, returning the zero time when absent.
func (m Measurements) Time(key string) time.Time {
	t, _ := m[key].(time.Time)
	return t
}

// String reads a string metadata value, returning "" when absent.
func (md Metadata) String(key string) string {
	s, _ := md[key].(string)
	return s
}

// Map reads a map metadata value, returning nil when absent.
func (md Metadata) Map(key string) map[string]interface{} {
	m, _ := md[key].(map[string]interface{})
	return m
}
