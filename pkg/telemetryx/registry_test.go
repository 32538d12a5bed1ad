package telemetryx_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/livex/pkg/telemetryx"
)

// recorder collects handler invocations.
type recorder struct {
	mu    sync.Mutex
	calls []telemetryx.Event
	cfgs  []interface{}
}

func (r *recorder) handler(event telemetryx.Event, _ telemetryx.Measurements, _ telemetryx.Metadata, cfg interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, event)
	r.cfgs = append(r.cfgs, cfg)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestAttachAndExecute(t *testing.T) {
	reg := telemetryx.NewRegistry()
	rec := &recorder{}

	if err := reg.Attach("h1", []telemetryx.Event{"a.start", "a.stop"}, rec.handler, "cfg"); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	reg.Execute("a.start", nil, nil)
	reg.Execute("a.stop", nil, nil)
	reg.Execute("unrelated", nil, nil)

	if rec.count() != 2 {
		t.Fatalf("expected 2 invocations, got %d", rec.count())
	}
	if rec.cfgs[0] != "cfg" {
		t.Fatalf("config not passed through, got %v", rec.cfgs[0])
	}
}

func TestAttachValidation(t *testing.T) {
	reg := telemetryx.NewRegistry()

	if err := reg.Attach("h1", nil, func(telemetryx.Event, telemetryx.Measurements, telemetryx.Metadata, interface{}) {}, nil); err == nil {
		t.Fatal("expected error for empty event list")
	}
	if err := reg.Attach("h1", []telemetryx.Event{"a"}, nil, nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
}

func TestReattachReplaces(t *testing.T) {
	reg := telemetryx.NewRegistry()
	first := &recorder{}
	second := &recorder{}

	if err := reg.Attach("h1", []telemetryx.Event{"a"}, first.handler, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := reg.Attach("h1", []telemetryx.Event{"a"}, second.handler, nil); err != nil {
		t.Fatalf("re-Attach: %v", err)
	}

	reg.Execute("a", nil, nil)

	if first.count() != 0 {
		t.Fatal("replaced handler still invoked")
	}
	if second.count() != 1 {
		t.Fatalf("replacement invoked %d times", second.count())
	}
	if ids := reg.Handlers("a"); len(ids) != 1 || ids[0] != "h1" {
		t.Fatalf("expected single attachment, got %v", ids)
	}
}

func TestDetach(t *testing.T) {
	reg := telemetryx.NewRegistry()
	rec := &recorder{}

	if err := reg.Attach("h1", []telemetryx.Event{"a", "b"}, rec.handler, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	reg.Detach("h1")
	reg.Detach("unknown") // no-op

	reg.Execute("a", nil, nil)
	reg.Execute("b", nil, nil)

	if rec.count() != 0 {
		t.Fatalf("detached handler invoked %d times", rec.count())
	}
}

func TestExecuteOrder(t *testing.T) {
	reg := telemetryx.NewRegistry()

	var mu sync.Mutex
	var order []string
	handlerFor := func(name string) telemetryx.HandlerFunc {
		return func(telemetryx.Event, telemetryx.Measurements, telemetryx.Metadata, interface{}) {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}

	for _, name := range []string{"first", "second", "third"} {
		if err := reg.Attach(name, []telemetryx.Event{"a"}, handlerFor(name), nil); err != nil {
			t.Fatalf("Attach(%s): %v", name, err)
		}
	}

	reg.Execute("a", nil, nil)

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("handlers ran out of attach order: %v", order)
	}
}

func TestPanickingHandlerDoesNotPropagate(t *testing.T) {
	reg := telemetryx.NewRegistry()
	rec := &recorder{}

	panicking := func(telemetryx.Event, telemetryx.Measurements, telemetryx.Metadata, interface{}) {
		panic("handler bug")
	}

	if err := reg.Attach("bad", []telemetryx.Event{"a"}, panicking, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := reg.Attach("good", []telemetryx.Event{"a"}, rec.handler, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	// must not panic, and must still reach the later handler
	reg.Execute("a", nil, nil)

	if rec.count() != 1 {
		t.Fatalf("handler after panicking one not invoked, count=%d", rec.count())
	}
}

func TestSpanSuccess(t *testing.T) {
	reg := telemetryx.NewRegistry()
	rec := &recorder{}

	events := []telemetryx.Event{"op.start", "op.stop", "op.exception"}
	if err := reg.Attach("rec", events, rec.handler, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	var gotDuration time.Duration
	if err := reg.Attach("dur", []telemetryx.Event{"op.stop"}, func(_ telemetryx.Event, m telemetryx.Measurements, _ telemetryx.Metadata, _ interface{}) {
		gotDuration = m.Duration("duration")
	}, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	err := telemetryx.Span(reg, "op", telemetryx.Metadata{"k": "v"}, func() error {
		time.Sleep(time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("Span: %v", err)
	}

	if len(rec.calls) != 2 || rec.calls[0] != "op.start" || rec.calls[1] != "op.stop" {
		t.Fatalf("unexpected events: %v", rec.calls)
	}
	if gotDuration <= 0 {
		t.Fatalf("expected positive duration, got %v", gotDuration)
	}
}

func TestSpanError(t *testing.T) {
	reg := telemetryx.NewRegistry()
	rec := &recorder{}

	events := []telemetryx.Event{"op.start", "op.stop", "op.exception"}
	if err := reg.Attach("rec", events, rec.handler, nil); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	boom := errors.New("boom")
	err := telemetryx.Span(reg, "op", nil, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Span should return fn error, got %v", err)
	}

	if len(rec.calls) != 2 || rec.calls[1] != "op.exception" {
		t.Fatalf("expected exception event, got %v", rec.calls)
	}
}
