// Package asyncx tracks the state of asynchronously loaded values for
// server-driven views.
//
// # AsyncResult
//
// An [AsyncResult] is an immutable value describing where an async load
// currently stands: idle, loading, failed, or ok. Transitions return new
// values, so snapshots can be handed to concurrent readers without locks.
//
//	r := asyncx.Idle[[]Order]()
//	r = r.Loading("fetching")
//	r = r.Ok(orders)
//	r = r.Loading()          // refresh: orders and OK() survive
//	r = r.Failed(err)        // stale orders still available via Result()
//
// The OK flag is sticky: it distinguishes "never succeeded yet" from
// "succeeded once, now reloading or failed", which is what a renderer
// needs in order to show stale data behind a spinner or error banner.
//
// # Coordinator
//
// [Start] and [StartFrom] run a load function in a goroutine and report
// each lifecycle snapshot to a callback owned by the enclosing view:
//
//	asyncx.Start(ctx, fetchOrders, func(r asyncx.AsyncResult[[]Order]) {
//	    view.SetAssign("orders", r)
//	})
//
// # Futures
//
// A [Future] represents a value computed in the background. Use [Run] to
// start work immediately and [Future.Await] to block until the result is
// ready. Await caches the result and is safe to call repeatedly.
package asyncx
