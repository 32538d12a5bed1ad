// Package viewlogx bridges view lifecycle telemetry to structured logging.
//
// Install attaches one handler per lifecycle event key to a telemetryx
// registry. Each invocation resolves an effective severity from the view's
// own log setting (use default, disabled, or explicit override), gates
// mount and handle_params events on connection stabilization, redacts
// parameters, and emits a multi-line message through a lazily evaluated
// producer so suppressed levels cost nothing.
package viewlogx

import (
	"fmt"

	"github.com/Abraxas-365/livex/pkg/logx"
	"github.com/Abraxas-365/livex/pkg/telemetryx"
	"github.com/Abraxas-365/livex/pkg/viewx"
)

// handlerID keys the logger's attachment on a registry. Installing twice
// replaces rather than duplicates.
const handlerID = "livex-lifecycle-logger"

// Config controls the lifecycle logger.
type Config struct {
	// Logger is the sink; defaults to the logx default logger
	Logger *logx.Logger

	// Level is the global default severity for views without an override
	Level logx.Level

	// Filter redacts parameter maps; defaults to viewx.DefaultParamsFilter
	Filter *viewx.ParamsFilter
}

// lifecycleLogger is the attached callback set. It holds no mutable state;
// every invocation is independent.
type lifecycleLogger struct {
	logger *logx.Logger
	level  logx.Level
	filter *viewx.ParamsFilter
}

// Install attaches the lifecycle logger to the registry. Re-installing
// replaces the previous attachment.
func Install(reg *telemetryx.Registry, cfg Config) error {
	if cfg.Logger == nil {
		cfg.Logger = logx.GetDefaultLogger()
	}
	if cfg.Filter == nil {
		cfg.Filter = viewx.DefaultParamsFilter()
	}

	ll := &lifecycleLogger{
		logger: cfg.Logger,
		level:  cfg.Level,
		filter: cfg.Filter,
	}
	return reg.Attach(handlerID, allEvents, ll.handle, nil)
}

// Uninstall detaches the lifecycle logger from the registry.
func Uninstall(reg *telemetryx.Registry) {
	reg.Detach(handlerID)
}

// handle dispatches one lifecycle event. It never panics into the caller:
// malformed metadata simply produces no output.
func (ll *lifecycleLogger) handle(event telemetryx.Event, m telemetryx.Measurements, md telemetryx.Metadata, _ interface{}) {
	socket, ok := md[MetaSocket].(*viewx.Socket)
	if !ok || socket == nil {
		return
	}

	level, enabled := socket.View.Log.Resolve(ll.level)
	if !enabled {
		return
	}

	// mount and handle_params fire during the initial static render too;
	// only the stabilized connection is worth logging. handle_event can
	// only arrive on a live connection, so it is never gated.
	switch event {
	case EventMountStart, EventMountStop, EventHandleParamsStart, EventHandleParamsStop:
		if !socket.Connected() {
			return
		}
	}

	ll.logger.Lazy(level, func() (string, logx.Fields) {
		return ll.message(event, m, md, socket), logx.Fields{
			"view":      socket.View.Name,
			"socket_id": socket.ID,
		}
	})
}

// message builds the multi-line report for one event. Only called once the
// level is known to be enabled.
func (ll *lifecycleLogger) message(event telemetryx.Event, m telemetryx.Measurements, md telemetryx.Metadata, socket *viewx.Socket) string {
	switch event {
	case EventMountStart:
		return fmt.Sprintf("MOUNT %s\n  Parameters: %v\n  Session: %v",
			socket.View.Name,
			ll.filter.Filter(md.Map(MetaParams)),
			md[MetaSession],
		)

	case EventHandleParamsStart:
		return fmt.Sprintf("HANDLE PARAMS in %s\n  Parameters: %v",
			socket.View.Name,
			ll.filter.Filter(md.Map(MetaParams)),
		)

	case EventHandleEventStart:
		return fmt.Sprintf("HANDLE EVENT %q in %s\n  Parameters: %v",
			md.String(MetaEvent),
			socket.View.Name,
			ll.filter.Filter(md.Map(MetaParams)),
		)

	case EventComponentHandleEventStart:
		return fmt.Sprintf("HANDLE EVENT %q in %s\n  Component: %s\n  Parameters: %v",
			md.String(MetaEvent),
			socket.View.Name,
			socket.Component,
			ll.filter.Filter(md.Map(MetaParams)),
		)

	case EventMountStop, EventHandleParamsStop, EventHandleEventStop, EventComponentHandleEventStop:
		return fmt.Sprintf("Replied in %s", humanizeDuration(m.Duration("duration")))

	default:
		return string(event)
	}
}
