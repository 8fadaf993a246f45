package hrtimer

import (
	"runtime"
	"time"

	"github.com/ghettovoice/hrtimer/internal/errorutil"
)

// poll is the body of the background run goroutine. It establishes a
// reference point, then compares elapsed time against the configured
// duration until expiry or cancellation.
func (t *Timer) poll(r *run) {
	ref, err := t.clock.Synchronize()
	if err != nil {
		// Fatal for this run. The run still terminates through the regular
		// stop path so that Stop/Reset can never hang on the join channel.
		t.finish(r, triggerStop, 0)
		t.log.Error("timer run aborted", "error", errorutil.NewWrapperError(ErrClockSync, err))
		return
	}

	for {
		// The cancel flag is sampled before the clock so that an honored
		// cancellation always records a reading taken after the signal was
		// raised, never one from an earlier, preempted iteration.
		canceled := r.cancel.Load()
		elapsed := t.clock.ElapsedSince(ref)

		// Expiry takes precedence over cancellation: a timer that reaches
		// full duration reports expired=true even when a stop is requested
		// in the same instant.
		if elapsed > t.duration {
			t.fire()
			// Report the configured duration, not the overshoot. The loop
			// almost always observes a value past the requested duration;
			// the stable value doubles as the expiry signal.
			t.finish(r, triggerExpire, t.duration)
			return
		}
		if canceled {
			t.finish(r, triggerStop, elapsed)
			return
		}

		if t.pollInterval > 0 {
			time.Sleep(t.pollInterval)
		} else {
			runtime.Gosched()
		}
	}
}

// fire invokes the callback exactly once. Failures are reported through the
// logger and swallowed: no caller is on the stack at invocation time, so
// there is nowhere to propagate them to.
func (t *Timer) fire() {
	if err := t.invoker.Invoke(t.callback, t.args, t.kwargs); err != nil {
		t.log.Error("timer callback failed", "error", err)
	}
}

// finish publishes the terminal state and elapsed value, then closes the
// join channel. The elapsed value is written exactly once per run, before
// the run becomes join-able, so a joined caller never observes a stale or
// partial reading.
func (t *Timer) finish(r *run, trig lifecycleTrigger, elapsed time.Duration) {
	t.mu.Lock()
	err := t.sm.Fire(trig)
	t.elapsed = elapsed
	t.mu.Unlock()
	close(r.done)

	if err != nil {
		// Running permits both expire and stop, so this only fires if the
		// lifecycle machine itself is miswired.
		t.log.Error("timer state corrupted", "error", err)
		return
	}
	t.log.Debug("timer run finished")
}
