package telemetryx

import (
	"github.com/Abraxas-365/livex/pkg/errx"
)

var busErrors = errx.NewRegistry("TELEMETRY")

var (
	// ErrNoEvents is returned when attaching a handler to an empty event list
	ErrNoEvents = busErrors.Register("NO_EVENTS", errx.TypeValidation, "handler must be attached to at least one event")

	// ErrNilHandler is returned when attaching a nil handler function
	ErrNilHandler = busErrors.Register("NIL_HANDLER", errx.TypeValidation, "handler function must not be nil")
)
