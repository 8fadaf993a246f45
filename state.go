package hrtimer

import "github.com/qmuntal/stateless"

// State represents the current lifecycle state of a [Timer].
type State string

const (
	// StateIdle indicates the timer has not been started since creation or
	// the last reset.
	StateIdle State = "idle"
	// StateRunning indicates a background run is in progress.
	StateRunning State = "running"
	// StateExpired indicates the timer reached its full duration naturally.
	StateExpired State = "expired"
	// StateStopped indicates the timer was stopped before expiration.
	StateStopped State = "stopped"
)

type lifecycleTrigger string

const (
	triggerStart  lifecycleTrigger = "start"
	triggerExpire lifecycleTrigger = "expire"
	triggerStop   lifecycleTrigger = "stop"
	triggerReset  lifecycleTrigger = "reset"
)

// newLifecycle builds the timer lifecycle machine:
//
//	Idle -> Running -> Expired | Stopped -> Idle (reset)
//
// Terminal states permit start directly: restarting without an explicit
// reset joins the finished run and behaves as a fresh one. Stop is ignored
// outside Running so that stopping a never-started or already-finished
// timer stays an idempotent no-op.
func newLifecycle() *stateless.StateMachine {
	sm := stateless.NewStateMachineWithMode(StateIdle, stateless.FiringImmediate)

	sm.Configure(StateIdle).
		Permit(triggerStart, StateRunning).
		PermitReentry(triggerReset).
		Ignore(triggerStop)

	sm.Configure(StateRunning).
		Permit(triggerExpire, StateExpired).
		Permit(triggerStop, StateStopped).
		Ignore(triggerStart)

	sm.Configure(StateExpired).
		Permit(triggerStart, StateRunning).
		Permit(triggerReset, StateIdle).
		Ignore(triggerStop)

	sm.Configure(StateStopped).
		Permit(triggerStart, StateRunning).
		Permit(triggerReset, StateIdle).
		Ignore(triggerStop)

	return sm
}
