package clockutil

import (
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hrtimer/internal/errorutil"
)

// Counter clock errors.
const (
	// ErrCounterQuery is returned when the counter frequency query fails.
	ErrCounterQuery errorutil.Error = "counter query failed"
)

// CounterSource describes a raw high-resolution counter paired with a coarse
// wall clock. It models platforms where the only monotonic source is a
// hardware counter whose frequency is queried separately and whose readings
// are not synchronized to wall time.
type CounterSource struct {
	// Frequency returns the counter frequency in ticks per second.
	Frequency func() (int64, error)
	// Read returns the current counter value.
	Read func() int64
	// Wall returns the current coarse wall-clock time. Its resolution may be
	// as poor as several milliseconds; it only has to advance eventually.
	Wall func() time.Time
}

// CounterClock reconciles a coarse wall clock with a fine-grained counter to
// produce microsecond-resolution elapsed readings.
//
// Modern platforms have no use for it: [System] reads the unified monotonic
// clock directly. It is kept for sources that expose nothing better than a
// {coarse wall clock, raw counter} pair.
type CounterClock struct {
	src  CounterSource
	freq int64
}

// NewCounterClock creates a [CounterClock] over src.
// The counter frequency is queried once; a query failure is fatal.
func NewCounterClock(src CounterSource) (*CounterClock, error) {
	if src.Frequency == nil || src.Read == nil || src.Wall == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("incomplete counter source"))
	}

	freq, err := src.Frequency()
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrCounterQuery, err))
	}
	if freq <= 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrCounterQuery, "non-positive frequency %d", freq))
	}

	return &CounterClock{src: src, freq: freq}, nil
}

// Frequency returns the counter frequency in ticks per second.
func (c *CounterClock) Frequency() int64 { return c.freq }

// Synchronize samples the coarse wall clock until a tick boundary is observed
// and captures the counter value at that instant. The resulting pair is
// aligned to within one coarse-clock tick.
//
// The goroutine could get rescheduled between the wall and counter reads,
// widening the gap between the two. The window is rare and small relative to
// the coarse tick, so it is tolerated rather than guarded against.
func (c *CounterClock) Synchronize() (Reference, error) {
	before := c.src.Wall()

	var (
		now     time.Time
		counter int64
	)
	for {
		now = c.src.Wall()
		counter = c.src.Read()
		if !now.Equal(before) {
			break
		}
	}

	return Reference{Wall: now, Counter: counter}, nil
}

// ElapsedSince converts the counter delta since ref into elapsed wall-clock
// time. The division goes through a float64 intermediate so that frequencies
// that do not evenly divide counter deltas lose no more than the documented
// microsecond precision; the result is truncated, not rounded.
func (c *CounterClock) ElapsedSince(ref Reference) time.Duration {
	ticks := c.src.Read() - ref.Counter
	micros := int64(float64(ticks) / float64(c.freq) * 1e6)
	return time.Duration(micros) * time.Microsecond
}

// WallAt returns the absolute wall-clock equivalent of the current counter
// reading: the reference timestamp plus the elapsed microseconds since ref.
func (c *CounterClock) WallAt(ref Reference) time.Time {
	return ref.Wall.Add(c.ElapsedSince(ref))
}
