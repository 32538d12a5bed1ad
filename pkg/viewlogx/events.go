package viewlogx

import (
	"github.com/Abraxas-365/livex/pkg/telemetryx"
)

// Lifecycle event keys emitted by the view runtime.
const (
	EventMountStart = telemetryx.Event("livex.view.mount.start")
	EventMountStop  = telemetryx.Event("livex.view.mount.stop")

	EventHandleParamsStart = telemetryx.Event("livex.view.handle_params.start")
	EventHandleParamsStop  = telemetryx.Event("livex.view.handle_params.stop")

	EventHandleEventStart = telemetryx.Event("livex.view.handle_event.start")
	EventHandleEventStop  = telemetryx.Event("livex.view.handle_event.stop")

	EventComponentHandleEventStart = telemetryx.Event("livex.component.handle_event.start")
	EventComponentHandleEventStop  = telemetryx.Event("livex.component.handle_event.stop")
)

// Metadata keys the view runtime populates on lifecycle events.
const (
	// MetaSocket holds the *viewx.Socket of the originating connection
	MetaSocket = "socket"

	// MetaParams holds the structured parameter map (redacted before logging)
	MetaParams = "params"

	// MetaSession holds the session payload (never redacted)
	MetaSession = "session"

	// MetaEvent holds the client event name for handle_event
	MetaEvent = "event"

	// MetaURI holds the patched URI for handle_params
	MetaURI = "uri"
)

// allEvents is the complete set of keys the lifecycle logger attaches to.
var allEvents = []telemetryx.Event{
	EventMountStart,
	EventMountStop,
	EventHandleParamsStart,
	EventHandleParamsStop,
	EventHandleEventStart,
	EventHandleEventStop,
	EventComponentHandleEventStart,
	EventComponentHandleEventStop,
}
