package telemetryx

import (
	"time"
)

// Span wraps fn with a pair of events on the registry: "<prefix>.start"
// before the call and "<prefix>.stop" after it, carrying the monotonic
// start time and the elapsed duration. If fn returns an error the stop
// event is "<prefix>.exception" and metadata gains an "error" entry.
//
// The metadata map is shared by both events; callers must not mutate it
// concurrently with the span.
func Span(r *Registry, prefix Event, metadata Metadata, fn func() error) error {
	if metadata == nil {
		metadata = Metadata{}
	}

	start := time.Now()
	r.Execute(prefix+".start", Measurements{"system_time": start}, metadata)

	err := fn()
	elapsed := time.Since(start)

	if err != nil {
		metadata["error"] = err
		r.Execute(prefix+".exception", Measurements{"duration": elapsed}, metadata)
		return err
	}

	r.Execute(prefix+".stop", Measurements{"duration": elapsed}, metadata)
	return nil
}
