package asyncx_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/livex/pkg/asyncx"
)

// --- AsyncResult tests ---

func TestIdle(t *testing.T) {
	r := asyncx.Idle[string]()

	if !r.IsIdle() {
		t.Fatal("expected idle")
	}
	if r.OK() {
		t.Fatal("idle must not be ok")
	}
	if r.IsLoading() || r.LoadingState() != nil {
		t.Fatal("idle must not be loading")
	}
	if r.HasFailed() || r.FailureReason() != nil {
		t.Fatal("idle must not be failed")
	}
	if _, has := r.Value(); has {
		t.Fatal("idle must not carry a result")
	}
}

func TestLoadingFresh(t *testing.T) {
	r := asyncx.Loading[int]()

	if r.IsIdle() {
		t.Fatal("loading must clear idle")
	}
	if !r.IsLoading() {
		t.Fatal("expected loading")
	}
	if state, ok := r.LoadingState().(bool); !ok || !state {
		t.Fatalf("fresh loading state should default to true, got %v", r.LoadingState())
	}
	if r.OK() {
		t.Fatal("fresh loading must not be ok")
	}
	if r.HasFailed() {
		t.Fatal("loading must clear failed")
	}
}

func TestLoadingWithAnnotation(t *testing.T) {
	r := asyncx.Loading[int]("fetching page 2")

	if r.LoadingState() != "fetching page 2" {
		t.Fatalf("expected annotation, got %v", r.LoadingState())
	}
}

func TestLoadingPreservesResult(t *testing.T) {
	r := asyncx.Ok("data").Loading()

	if !r.OK() {
		t.Fatal("ok flag must survive loading transition")
	}
	if got := r.Result(); got != "data" {
		t.Fatalf("result must survive loading transition, got %q", got)
	}
	if !r.IsLoading() {
		t.Fatal("expected loading")
	}
}

func TestFailed(t *testing.T) {
	reason := errors.New("boom")
	r := asyncx.Loading[string]().Failed(reason)

	if r.FailureReason() != reason {
		t.Fatalf("expected stored reason, got %v", r.FailureReason())
	}
	if r.IsLoading() {
		t.Fatal("failed must clear loading")
	}
	if r.IsIdle() {
		t.Fatal("failed must clear idle")
	}
}

func TestFailedPreservesResult(t *testing.T) {
	r := asyncx.Ok(42).Failed("timeout")

	if !r.OK() {
		t.Fatal("ok flag must survive failure")
	}
	if r.Result() != 42 {
		t.Fatalf("result must survive failure, got %d", r.Result())
	}
	if !r.HasFailed() {
		t.Fatal("expected failed")
	}
}

func TestFailedWithoutPriorLoading(t *testing.T) {
	// calling Failed before any Loading is permitted: total transitions
	r := asyncx.Idle[string]().Failed("early")

	if !r.HasFailed() || r.IsLoading() || r.IsIdle() {
		t.Fatalf("unexpected state: %v", r)
	}
}

func TestOk(t *testing.T) {
	r := asyncx.Loading[string]("x").Failed("y").Ok("value")

	if !r.OK() {
		t.Fatal("expected ok")
	}
	if r.Result() != "value" {
		t.Fatalf("expected result, got %q", r.Result())
	}
	if r.IsLoading() || r.HasFailed() || r.IsIdle() {
		t.Fatalf("ok must clear transient states: %v", r)
	}
	if v, has := r.Value(); !has || v != "value" {
		t.Fatalf("Value() = %q, %v", v, has)
	}
}

func TestOkIsSticky(t *testing.T) {
	r := asyncx.Ok("first")

	for _, derived := range []asyncx.AsyncResult[string]{
		r.Loading(),
		r.Loading("refresh"),
		r.Failed("later error"),
		r.Loading().Failed("x").Loading().Ok("second"),
	} {
		if !derived.OK() {
			t.Fatalf("ok flag reset by a transition: %v", derived)
		}
	}
}

func TestRefreshFailureScenario(t *testing.T) {
	// idle -> loading("fetching") -> ok("data") -> loading() -> failed("timeout")
	r := asyncx.Idle[string]().
		Loading("fetching").
		Ok("data").
		Loading().
		Failed("timeout")

	if !r.OK() {
		t.Fatal("expected sticky ok")
	}
	if r.Result() != "data" {
		t.Fatalf("expected stale result, got %q", r.Result())
	}
	if r.FailureReason() != "timeout" {
		t.Fatalf("expected failure reason, got %v", r.FailureReason())
	}
	if r.IsLoading() {
		t.Fatal("failed must clear loading")
	}
	if r.IsIdle() {
		t.Fatal("idle must stay false")
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := asyncx.Loading[string]("original")
	_ = base.Ok("done")
	_ = base.Failed("err")

	if !base.IsLoading() || base.LoadingState() != "original" {
		t.Fatalf("receiver mutated: %v", base)
	}
	if base.OK() || base.HasFailed() {
		t.Fatalf("receiver mutated: %v", base)
	}
}

// --- coordinator tests ---

// collector records every snapshot an async operation reports.
type collector[T any] struct {
	mu   sync.Mutex
	seen []asyncx.AsyncResult[T]
}

func (c *collector[T]) update(r asyncx.AsyncResult[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, r)
}

func (c *collector[T]) snapshots() []asyncx.AsyncResult[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]asyncx.AsyncResult[T](nil), c.seen...)
}

func TestStartSuccess(t *testing.T) {
	var c collector[string]

	fut := asyncx.Start(context.Background(), func(ctx context.Context) (string, error) {
		return "loaded", nil
	}, c.update)

	if v, err := fut.Await(); err != nil || v != "loaded" {
		t.Fatalf("Await() = %q, %v", v, err)
	}

	// wait for the final update to land
	deadline := time.After(time.Second)
	for {
		snaps := c.snapshots()
		if len(snaps) >= 2 {
			if !snaps[0].IsLoading() {
				t.Fatalf("first snapshot should be loading: %v", snaps[0])
			}
			last := snaps[len(snaps)-1]
			if !last.OK() || last.Result() != "loaded" {
				t.Fatalf("final snapshot should be ok: %v", last)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for snapshots, got %d", len(snaps))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestStartFailure(t *testing.T) {
	var c collector[string]
	boom := errors.New("boom")

	fut := asyncx.Start(context.Background(), func(ctx context.Context) (string, error) {
		return "", boom
	}, c.update)

	if _, err := fut.Await(); !errors.Is(err, boom) {
		t.Fatalf("Await() err = %v", err)
	}

	deadline := time.After(time.Second)
	for {
		snaps := c.snapshots()
		if len(snaps) >= 2 {
			last := snaps[len(snaps)-1]
			if !last.HasFailed() {
				t.Fatalf("final snapshot should be failed: %v", last)
			}
			if last.OK() {
				t.Fatal("never-succeeded load must not be ok")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for snapshots")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestStartFromPreservesPriorResult(t *testing.T) {
	var c collector[string]
	prior := asyncx.Ok("stale")

	asyncx.StartFrom(context.Background(), prior, func(ctx context.Context) (string, error) {
		return "", errors.New("refresh failed")
	}, c.update)

	deadline := time.After(time.Second)
	for {
		snaps := c.snapshots()
		if len(snaps) >= 2 {
			for _, s := range snaps {
				if !s.OK() || s.Result() != "stale" {
					t.Fatalf("prior result lost during refresh: %v", s)
				}
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for snapshots")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// --- Future tests ---

func TestFutureAwaitCachesResult(t *testing.T) {
	calls := 0
	fut := asyncx.Run(func() (int, error) {
		calls++
		return 7, nil
	})

	for i := 0; i < 3; i++ {
		v, err := fut.Await()
		if err != nil || v != 7 {
			t.Fatalf("Await() = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("function ran %d times", calls)
	}
}
