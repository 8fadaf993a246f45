package hrtimer

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/hrtimer/internal/clockutil"
	"github.com/ghettovoice/hrtimer/internal/errorutil"
)

// Timer is a cancelable one-shot timer. It invokes its callback exactly once
// per run, on a dedicated background goroutine, after the configured duration
// elapses.
//
// The zero value is not usable; create timers with [New]. A Timer is safe for
// concurrent use, with one caveat inherited from its cooperative design:
// [Timer.Stop] and [Timer.Reset] block until the background goroutine
// terminates, including any callback invocation already in progress.
type Timer struct {
	// duration is the configured run length, immutable after construction.
	duration time.Duration
	// callback with its bound arguments, captured at construction.
	callback CallbackFunc
	args     []any
	kwargs   map[string]any

	clock        clockutil.Clock
	pollInterval time.Duration
	invoker      Invoker
	log          *slog.Logger

	// mu guards the lifecycle machine, elapsed and the run handle.
	mu      sync.Mutex
	sm      *stateless.StateMachine
	elapsed time.Duration
	run     *run
}

// run is the ownership token for one background poll goroutine: an
// instance-scoped cancellation flag plus the join channel, closed by the
// goroutine after its terminal state has been published.
type run struct {
	cancel atomic.Bool
	done   chan struct{}
}

func newRun() *run { return &run{done: make(chan struct{})} }

// New creates a new [Timer] that invokes callback after duration.
//
// Duration must be non-negative and callback non-nil; sub-microsecond
// precision is truncated away. Options are optional, default options are
// used if nil (see [Options]).
func New(duration time.Duration, callback CallbackFunc, opts *Options) (*Timer, error) {
	if duration < 0 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("negative duration %v", duration))
	}
	if callback == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("callback must not be nil"))
	}
	if pi := opts.pollInterval(); pi < 0 || pi > MaxPollInterval {
		return nil, errtrace.Wrap(NewInvalidArgumentError(
			"poll interval %v out of range [0, %v]", pi, MaxPollInterval,
		))
	}

	t := &Timer{
		duration:     duration.Truncate(time.Microsecond),
		callback:     callback,
		args:         slices.Clone(opts.args()),
		kwargs:       maps.Clone(opts.kwargs()),
		clock:        opts.clock(),
		pollInterval: opts.pollInterval(),
		invoker:      opts.invoker(),
		sm:           newLifecycle(),
	}
	t.log = opts.log().With("timer", t)
	return t, nil
}

// Start launches a background run of the timer. It returns immediately after
// the run goroutine is spawned.
//
// Starting an already running timer is a no-op, not an error. Starting a
// stopped or expired timer without an intervening [Timer.Reset] joins the
// finished run, clears its elapsed value and behaves as a fresh run.
func (t *Timer) Start() error {
	t.mu.Lock()
	if t.state() == StateRunning {
		t.mu.Unlock()
		return nil
	}

	// Release the previous run's handle. Its goroutine has already left the
	// poll loop (the state is terminal) but may not have closed the join
	// channel yet.
	if r := t.run; r != nil {
		<-r.done
		t.run = nil
	}

	if err := t.sm.Fire(triggerStart); err != nil {
		t.mu.Unlock()
		return errtrace.Wrap(errorutil.NewWrapperError(ErrTransition, err))
	}
	t.elapsed = 0
	r := newRun()
	t.run = r
	go t.poll(r)
	t.mu.Unlock()

	t.log.Debug("timer started")
	return nil
}

// Stop requests cancellation of the current run, waits for the run goroutine
// to terminate and returns the elapsed time recorded for the run.
//
// Stopping a timer that is not running returns the last recorded elapsed
// value (zero if the timer never ran) without blocking; calling Stop twice
// returns the same value both times. If the run reaches full duration in the
// same instant the stop is requested, expiry wins: the callback fires and
// the full duration is returned.
func (t *Timer) Stop() time.Duration {
	t.mu.Lock()
	if t.state() != StateRunning {
		elapsed := t.elapsed
		t.mu.Unlock()
		return elapsed
	}
	r := t.run
	r.cancel.Store(true)
	t.mu.Unlock()

	<-r.done

	t.mu.Lock()
	if t.run == r {
		t.run = nil
	}
	elapsed := t.elapsed
	t.mu.Unlock()

	t.log.Debug("timer stopped")
	return elapsed
}

// Reset returns the timer to its initial state: not running, not expired,
// zero elapsed. A subsequent [Timer.Start] behaves as a fresh run.
//
// Reset does not cancel an active run. It waits for natural completion or
// a prior stop, matching the join semantics of [Timer.Stop]. Callers wanting
// early termination stop the timer first. Reset fails with [ErrTransition]
// if the timer is restarted concurrently while it waits.
func (t *Timer) Reset() error {
	t.mu.Lock()
	r := t.run
	t.mu.Unlock()

	if r != nil {
		<-r.done
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.sm.Fire(triggerReset); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrTransition, err))
	}
	if t.run == r {
		t.run = nil
	}
	t.elapsed = 0
	return nil
}

// Duration returns the configured run length, truncated to microseconds.
func (t *Timer) Duration() time.Duration {
	if t == nil {
		return 0
	}
	return t.duration
}

// Elapsed returns the elapsed time recorded by the last finished run: the
// full duration after expiry, the cancellation-time reading after a stop,
// zero while running or after a reset.
func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Expired reports whether the timer reached its full duration naturally,
// as opposed to being stopped.
func (t *Timer) Expired() bool {
	if t == nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state() == StateExpired
}

// Running reports whether a background run is in progress.
func (t *Timer) Running() bool {
	if t == nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state() == StateRunning
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	if t == nil {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state()
}

func (t *Timer) String() string {
	if t == nil {
		return "<hrtimer.Timer nil>"
	}

	t.mu.Lock()
	state := t.state()
	t.mu.Unlock()

	return fmt.Sprintf("<hrtimer.Timer at %p duration=%d, expired=%t, running=%t>",
		t, t.duration.Microseconds(), state == StateExpired, state == StateRunning)
}

func (t *Timer) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}

	t.mu.Lock()
	state := t.state()
	elapsed := t.elapsed
	t.mu.Unlock()

	return slog.GroupValue(
		slog.String("state", string(state)),
		slog.Duration("duration", t.duration),
		slog.Duration("elapsed", elapsed),
	)
}

// state returns the machine state. Caller must hold the mutex.
func (t *Timer) state() State {
	return t.sm.MustState().(State) //nolint:forcetypeassert
}
