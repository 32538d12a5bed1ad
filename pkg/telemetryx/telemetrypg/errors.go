package telemetrypg

import (
	"github.com/Abraxas-365/livex/pkg/errx"
)

var pgErrors = errx.NewRegistry("TELEMETRY_PG")

var (
	// ErrRecord indicates the insert failed
	ErrRecord = pgErrors.Register("RECORD", errx.TypeExternal, "failed to record telemetry event")

	// ErrQuery indicates a read query failed
	ErrQuery = pgErrors.Register("QUERY", errx.TypeExternal, "failed to query telemetry records")

	// ErrMarshal indicates the event payload could not be serialized
	ErrMarshal = pgErrors.Register("MARSHAL", errx.TypeInternal, "failed to marshal telemetry payload")
)
