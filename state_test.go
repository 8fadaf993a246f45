package hrtimer

import "testing"

func TestLifecycle(t *testing.T) {
	t.Parallel()

	sm := newLifecycle()
	if got := sm.MustState().(State); got != StateIdle {
		t.Fatalf("Initial state = %v, want %v", got, StateIdle)
	}

	steps := []struct {
		trigger lifecycleTrigger
		want    State
	}{
		{triggerStop, StateIdle}, // ignored outside Running
		{triggerReset, StateIdle},
		{triggerStart, StateRunning},
		{triggerStart, StateRunning}, // ignored while Running
		{triggerExpire, StateExpired},
		{triggerStop, StateExpired}, // idempotent stop after expiry
		{triggerStart, StateRunning},
		{triggerStop, StateStopped},
		{triggerStop, StateStopped},
		{triggerStart, StateRunning}, // restart without reset
		{triggerStop, StateStopped},
		{triggerReset, StateIdle},
	}
	for i, step := range steps {
		if err := sm.Fire(step.trigger); err != nil {
			t.Fatalf("step %d: Fire(%v) error = %v", i, step.trigger, err)
		}
		if got := sm.MustState().(State); got != step.want {
			t.Fatalf("step %d: state = %v after %v, want %v", i, got, step.trigger, step.want)
		}
	}
}

func TestLifecycle_InvalidTransitions(t *testing.T) {
	t.Parallel()

	// Expire is only reachable from Running.
	sm := newLifecycle()
	if err := sm.Fire(triggerExpire); err == nil {
		t.Error("Expected Fire(expire) from Idle to fail")
	}

	// Reset is not permitted while Running.
	sm = newLifecycle()
	if err := sm.Fire(triggerStart); err != nil {
		t.Fatalf("Fire(start) error = %v", err)
	}
	if err := sm.Fire(triggerReset); err == nil {
		t.Error("Expected Fire(reset) from Running to fail")
	}
}
