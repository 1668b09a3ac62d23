// Package engine implements the tick engine that drives the master clock.
//
// A single goroutine owns the clock and the item store while the engine is
// alive. User mutations, consistent reads and clock ticks are all handled by
// that goroutine one at a time, so a tick can never interleave with an edit
// or a reset. Pausing drops the ticker; a tick that was already queued on a
// dropped ticker is never read, and every handled tick re-checks the armed
// flag, so at most one decrement happens per quantum.
//
// Start alerts fire once per boundary, where a boundary is an item ID paired
// with its duration. A non-tick change that moves the clock re-opens the
// boundaries at or below the new value, since the countdown restarts from
// there.
package engine
