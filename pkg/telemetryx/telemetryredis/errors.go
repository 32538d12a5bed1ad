package telemetryredis

import (
	"github.com/Abraxas-365/livex/pkg/errx"
)

var redisErrors = errx.NewRegistry("TELEMETRY_REDIS")

var (
	// ErrMarshal indicates the event could not be serialized
	ErrMarshal = redisErrors.Register("MARSHAL", errx.TypeInternal, "failed to marshal telemetry event")

	// ErrPublish indicates the publish command failed
	ErrPublish = redisErrors.Register("PUBLISH", errx.TypeExternal, "failed to publish telemetry event")
)
