// Package telemetrypg persists view lifecycle events to PostgreSQL as an
// audit trail. Expected schema:
//
//	CREATE TABLE view_lifecycle_events (
//	    id          UUID PRIMARY KEY,
//	    event       TEXT NOT NULL,
//	    view_name   TEXT NOT NULL DEFAULT '',
//	    socket_id   TEXT NOT NULL DEFAULT '',
//	    duration_ns BIGINT NOT NULL DEFAULT 0,
//	    payload     JSONB,
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
package telemetrypg

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/livex/pkg/asyncx"
	"github.com/Abraxas-365/livex/pkg/logx"
	"github.com/Abraxas-365/livex/pkg/telemetryx"
	"github.com/Abraxas-365/livex/pkg/viewx"
)

// AuditStore persists lifecycle events in PostgreSQL.
type AuditStore struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewAuditStore creates a Postgres-backed audit store.
func NewAuditStore(db *sqlx.DB) *AuditStore {
	return &AuditStore{
		db:      db,
		timeout: 5 * time.Second,
	}
}

// AuditRecord is one persisted lifecycle event.
type AuditRecord struct {
	ID         string          `db:"id" json:"id"`
	Event      string          `db:"event" json:"event"`
	ViewName   string          `db:"view_name" json:"view_name"`
	SocketID   string          `db:"socket_id" json:"socket_id"`
	DurationNS int64           `db:"duration_ns" json:"duration_ns"`
	Payload    json.RawMessage `db:"payload" json:"payload,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Install attaches the store to the registry for the given events.
// Inserts run off the emitting goroutine; failures are logged, never raised.
func (s *AuditStore) Install(reg *telemetryx.Registry, events []telemetryx.Event) error {
	return reg.Attach("livex-telemetry-pg", events, s.handler, nil)
}

// Uninstall detaches the store from the registry.
func (s *AuditStore) Uninstall(reg *telemetryx.Registry) {
	reg.Detach("livex-telemetry-pg")
}

func (s *AuditStore) handler(event telemetryx.Event, m telemetryx.Measurements, md telemetryx.Metadata, _ interface{}) {
	asyncx.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.Record(ctx, event, m, md); err != nil {
			logx.WithError(err).WithField("event", string(event)).Warn("telemetry audit insert failed")
		}
	})
}

// Record inserts one lifecycle event synchronously.
func (s *AuditStore) Record(ctx context.Context, event telemetryx.Event, m telemetryx.Measurements, md telemetryx.Metadata) error {
	rec := AuditRecord{
		ID:         uuid.New().String(),
		Event:      string(event),
		DurationNS: m.Duration("duration").Nanoseconds(),
		CreatedAt:  time.Now().UTC(),
	}

	if socket, ok := md[metaSocket].(*viewx.Socket); ok && socket != nil {
		rec.ViewName = socket.View.Name
		rec.SocketID = socket.ID
	}

	payload, err := json.Marshal(payloadFor(md))
	if err != nil {
		return pgErrors.NewWithCause(ErrMarshal, err).WithDetail("event", string(event))
	}
	rec.Payload = payload

	query := `
		INSERT INTO view_lifecycle_events (
			id, event, view_name, socket_id, duration_ns, payload, created_at
		) VALUES (
			:id, :event, :view_name, :socket_id, :duration_ns, :payload, :created_at
		)`

	if _, err := s.db.NamedExecContext(ctx, query, rec); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			// duplicate delivery of the same event id is not worth surfacing
			return nil
		}
		return pgErrors.NewWithCause(ErrRecord, err).
			WithDetail("event", string(event)).
			WithDetail("record_id", rec.ID)
	}
	return nil
}

// Recent returns the newest persisted events, most recent first.
func (s *AuditStore) Recent(ctx context.Context, limit int) ([]AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, event, view_name, socket_id, duration_ns, payload, created_at
		FROM view_lifecycle_events
		ORDER BY created_at DESC
		LIMIT $1`

	var records []AuditRecord
	if err := s.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, pgErrors.NewWithCause(ErrQuery, err)
	}
	return records, nil
}

// payloadFor extracts the JSON-safe slice of metadata worth persisting.
func payloadFor(md telemetryx.Metadata) map[string]interface{} {
	payload := make(map[string]interface{})
	if params := md.Map("params"); params != nil {
		payload["params"] = params
	}
	if event := md.String("event"); event != "" {
		payload["event"] = event
	}
	if uri := md.String("uri"); uri != "" {
		payload["uri"] = uri
	}
	return payload
}

// metaSocket mirrors the viewlogx metadata key without importing the
// logging bridge package.
const metaSocket = "socket"
