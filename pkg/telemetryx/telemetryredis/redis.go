// Package telemetryredis exports bus events to Redis pub/sub so external
// consumers (dashboards, aggregators) can observe view lifecycles without
// touching the serving process.
package telemetryredis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Abraxas-365/livex/pkg/asyncx"
	"github.com/Abraxas-365/livex/pkg/logx"
	"github.com/Abraxas-365/livex/pkg/telemetryx"
	"github.com/Abraxas-365/livex/pkg/viewx"
)

// Publisher publishes telemetry events to a Redis channel.
type Publisher struct {
	rdb     *redis.Client
	channel string
	timeout time.Duration
}

// NewPublisher creates a Redis-backed telemetry publisher.
func NewPublisher(rdb *redis.Client, channel string) *Publisher {
	if channel == "" {
		channel = "livex:telemetry"
	}
	return &Publisher{
		rdb:     rdb,
		channel: channel,
		timeout: 5 * time.Second,
	}
}

// wireEvent is the JSON shape published to the channel.
type wireEvent struct {
	ID           string                 `json:"id"`
	Event        string                 `json:"event"`
	At           time.Time              `json:"at"`
	Measurements map[string]interface{} `json:"measurements,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// Install attaches the publisher to the registry for the given events.
func (p *Publisher) Install(reg *telemetryx.Registry, events []telemetryx.Event) error {
	return reg.Attach("livex-telemetry-redis", events, p.Handler(), nil)
}

// Uninstall detaches the publisher from the registry.
func (p *Publisher) Uninstall(reg *telemetryx.Registry) {
	reg.Detach("livex-telemetry-redis")
}

// Handler returns a HandlerFunc that publishes each event fire-and-forget.
// Publishing happens off the emitting goroutine; failures are logged and
// never reach the caller.
func (p *Publisher) Handler() telemetryx.HandlerFunc {
	return func(event telemetryx.Event, m telemetryx.Measurements, md telemetryx.Metadata, _ interface{}) {
		asyncx.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
			defer cancel()

			if err := p.publish(ctx, event, m, md); err != nil {
				logx.WithError(err).WithField("event", string(event)).Warn("telemetry publish failed")
			}
		})
	}
}

// Publish serializes one event and publishes it synchronously.
func (p *Publisher) publish(ctx context.Context, event telemetryx.Event, m telemetryx.Measurements, md telemetryx.Metadata) error {
	wire := wireEvent{
		ID:           uuid.New().String(),
		Event:        string(event),
		At:           time.Now().UTC(),
		Measurements: sanitize(m),
		Metadata:     sanitize(md),
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return redisErrors.NewWithCause(ErrMarshal, err).WithDetail("event", string(event))
	}

	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return redisErrors.NewWithCause(ErrPublish, err).
			WithDetail("event", string(event)).
			WithDetail("channel", p.channel)
	}
	return nil
}

// sanitize flattens non-serializable values into wire-safe shapes.
func sanitize(in map[string]interface{}) map[string]interface{} {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case *viewx.Socket:
			out[k] = map[string]interface{}{
				"id":        val.ID,
				"view":      val.View.Name,
				"component": val.Component,
				"connected": val.Connected(),
			}
		case time.Duration:
			out[k] = val.Nanoseconds()
		case error:
			out[k] = val.Error()
		default:
			out[k] = v
		}
	}
	return out
}
