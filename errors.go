package hrtimer

import "github.com/ghettovoice/hrtimer/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrClockSync is reported when the clock fails to establish a
	// reference point at the start of a run.
	ErrClockSync Error = "clock synchronization failed"
	// ErrCallback wraps failures raised by the timer callback itself.
	ErrCallback Error = "callback failed"
	// ErrTransition is returned when a lifecycle operation is not allowed
	// in the timer's current state.
	ErrTransition Error = "invalid state transition"
)

// Error represents an hrtimer error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
