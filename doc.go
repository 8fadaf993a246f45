// Package hrtimer provides a cross-platform, high-resolution, cancelable
// one-shot timer primitive.
//
// A [Timer] runs its callback exactly once after a configured duration
// elapses, on a dedicated background goroutine, and reports elapsed
// wall-clock time with microsecond precision. Timers can be started,
// stopped before expiry, and reset for reuse; stopping or resetting joins
// the background goroutine, so no goroutines are leaked across runs.
//
// The package is not a scheduler: it supports neither periodic timers nor
// multiple pending callbacks per instance, and it makes no real-time
// scheduling guarantees. Timing precision is microsecond-level "close
// enough": values are truncated, not rounded, to whole microseconds.
package hrtimer
