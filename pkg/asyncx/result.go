package asyncx

import (
	"fmt"
)

// AsyncResult tracks the lifecycle of an asynchronously loaded value.
//
// It is an immutable value type: every transition returns a new AsyncResult
// and never mutates the receiver, so values are freely shareable across
// goroutines. The zero value is not meaningful; start from [Idle] or
// [Loading].
//
// Three transient states describe the current attempt — idle, loading,
// failed — while Ok is a sticky historical flag: once an operation has
// succeeded, Ok stays true forever, even while a later refresh is loading
// or has failed. The last successful result likewise survives subsequent
// loading and failure transitions, so a consumer can keep rendering stale
// data next to a spinner or an error banner instead of blanking out.
type AsyncResult[T any] struct {
	ok        bool
	idle      bool
	loading   any
	failed    any
	result    T
	hasResult bool
}

// Idle returns an AsyncResult for which no operation has been initiated.
func Idle[T any]() AsyncResult[T] {
	return AsyncResult[T]{idle: true}
}

// Loading returns a fresh loading AsyncResult with no prior result.
// An optional state annotation can be attached; it defaults to true.
func Loading[T any](state ...any) AsyncResult[T] {
	var r AsyncResult[T]
	return r.Loading(state...)
}

// Ok returns an AsyncResult holding a successfully computed value.
func Ok[T any](value T) AsyncResult[T] {
	var r AsyncResult[T]
	return r.Ok(value)
}

// Loading transitions into the loading state, preserving any prior result
// and the Ok flag. The optional state annotation is stored opaquely and
// defaults to true. Any pending failure is cleared.
func (r AsyncResult[T]) Loading(state ...any) AsyncResult[T] {
	next := r
	next.idle = false
	next.failed = nil
	next.loading = any(true)
	if len(state) > 0 && state[0] != nil {
		next.loading = state[0]
	}
	return next
}

// Failed transitions into the failed state, storing reason opaquely.
// Any in-flight loading annotation is cleared; a prior result and the
// Ok flag survive so stale data remains displayable.
func (r AsyncResult[T]) Failed(reason any) AsyncResult[T] {
	next := r
	next.idle = false
	next.loading = nil
	next.failed = reason
	return next
}

// Ok transitions into the successful state with the given value. The Ok
// flag is set permanently; loading and failed are cleared.
func (r AsyncResult[T]) Ok(value T) AsyncResult[T] {
	next := r
	next.idle = false
	next.loading = nil
	next.failed = nil
	next.ok = true
	next.result = value
	next.hasResult = true
	return next
}

// OK reports whether the result has ever successfully completed.
func (r AsyncResult[T]) OK() bool {
	return r.ok
}

// IsIdle reports whether no operation has been initiated yet.
func (r AsyncResult[T]) IsIdle() bool {
	return r.idle
}

// IsLoading reports whether an operation is currently in flight.
func (r AsyncResult[T]) IsLoading() bool {
	return r.loading != nil
}

// LoadingState returns the opaque loading annotation, or nil when not loading.
func (r AsyncResult[T]) LoadingState() any {
	return r.loading
}

// HasFailed reports whether the most recent attempt failed.
func (r AsyncResult[T]) HasFailed() bool {
	return r.failed != nil
}

// FailureReason returns the opaque failure payload, or nil when not failed.
func (r AsyncResult[T]) FailureReason() any {
	return r.failed
}

// Result returns the last successfully computed value, or the zero value
// if no operation has ever succeeded.
func (r AsyncResult[T]) Result() T {
	return r.result
}

// Value returns the last successful value and whether one exists.
func (r AsyncResult[T]) Value() (T, bool) {
	return r.result, r.hasResult
}

// String renders the current state for debugging.
func (r AsyncResult[T]) String() string {
	switch {
	case r.idle:
		return "AsyncResult<idle>"
	case r.loading != nil:
		if r.hasResult {
			return fmt.Sprintf("AsyncResult<loading(%v) result=%v>", r.loading, r.result)
		}
		return fmt.Sprintf("AsyncResult<loading(%v)>", r.loading)
	case r.failed != nil:
		if r.hasResult {
			return fmt.Sprintf("AsyncResult<failed(%v) result=%v>", r.failed, r.result)
		}
		return fmt.Sprintf("AsyncResult<failed(%v)>", r.failed)
	case r.ok:
		return fmt.Sprintf("AsyncResult<ok result=%v>", r.result)
	default:
		return "AsyncResult<empty>"
	}
}
