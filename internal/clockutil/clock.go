// Package clockutil provides monotonic microsecond-resolution clock sources
// for elapsed-time measurement.
package clockutil

import "time"

// Reference is a synchronization point pairing a wall-clock timestamp with a
// high-resolution counter value. It is the zero point for all elapsed-time
// readings of a single timer run.
type Reference struct {
	// Wall is the wall-clock timestamp captured at the synchronization point.
	Wall time.Time
	// Counter is the raw counter value captured at the synchronization point.
	// It is zero for clocks backed by a unified monotonic source.
	Counter int64
}

// Clock produces monotonic elapsed-time readings anchored to a [Reference].
//
// Implementations must be safe for concurrent use: Synchronize is called once
// at the start of a timer run, ElapsedSince on every poll iteration of the
// run goroutine and possibly from other goroutines.
type Clock interface {
	// Synchronize establishes a new reference point.
	Synchronize() (Reference, error)
	// ElapsedSince returns the wall-clock time elapsed since ref,
	// truncated to microsecond precision.
	ElapsedSince(ref Reference) time.Duration
}

type systemClock struct{}

// System returns the platform monotonic clock.
//
// [time.Time] values carry a monotonic component on all supported platforms,
// so synchronization is a single reading and elapsed readings are immune to
// wall-clock adjustments.
func System() Clock { return systemClock{} }

func (systemClock) Synchronize() (Reference, error) {
	return Reference{Wall: time.Now()}, nil
}

func (systemClock) ElapsedSince(ref Reference) time.Duration {
	return time.Since(ref.Wall).Truncate(time.Microsecond)
}
