package asyncx

import (
	"context"
)

// UpdateFunc receives each immutable AsyncResult snapshot as an async
// operation progresses. Implementations are called from the coordinator
// goroutine; typical owners store the snapshot and re-render.
type UpdateFunc[T any] func(AsyncResult[T])

// Start runs fn in a goroutine and drives a fresh AsyncResult through its
// lifecycle: update is called once with the loading state immediately, and
// once more with either the Ok or Failed state when fn settles.
//
// A context that is cancelled before fn settles surfaces as a Failed
// transition carrying ctx.Err(). The returned Future resolves to fn's
// outcome either way.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error), update UpdateFunc[T]) *Future[T] {
	return StartFrom(ctx, Idle[T](), fn, update)
}

// StartFrom behaves like Start but refreshes an existing AsyncResult:
// a prior successful result and the Ok flag survive the loading transition,
// so consumers can keep showing stale data while the refresh runs.
func StartFrom[T any](ctx context.Context, prior AsyncResult[T], fn func(context.Context) (T, error), update UpdateFunc[T]) *Future[T] {
	current := prior.Loading()
	update(current)

	fut := Run(func() (T, error) {
		return fn(ctx)
	})

	go func() {
		done := make(chan struct{})
		var (
			value T
			err   error
		)
		go func() {
			value, err = fut.Await()
			close(done)
		}()

		select {
		case <-ctx.Done():
			update(current.Failed(ctx.Err()))
		case <-done:
			if err != nil {
				update(current.Failed(err))
				return
			}
			update(current.Ok(value))
		}
	}()

	return fut
}
