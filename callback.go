package hrtimer

import (
	"runtime/debug"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hrtimer/internal/errorutil"
)

// CallbackFunc is a timer callback. The positional and keyword arguments
// bound at construction are delivered exactly as captured.
//
// The callback runs on the timer's background goroutine with no caller on
// the stack, so a returned error cannot propagate anywhere. It is reported
// through the timer's logger instead.
type CallbackFunc func(args []any, kwargs map[string]any) error

// Invoker invokes a timer callback on the background goroutine.
//
// It is the integration point for host runtimes whose callbacks must be
// called under a specific concurrency discipline (marshaled to a particular
// thread, under a runtime-global lock, and so on). The default invoker calls
// the callback directly and converts panics into errors.
type Invoker interface {
	Invoke(cb CallbackFunc, args []any, kwargs map[string]any) error
}

// InvokerFunc adapts a function to the [Invoker] interface.
type InvokerFunc func(cb CallbackFunc, args []any, kwargs map[string]any) error

func (f InvokerFunc) Invoke(cb CallbackFunc, args []any, kwargs map[string]any) error {
	return errtrace.Wrap(f(cb, args, kwargs))
}

type directInvoker struct{}

func (directInvoker) Invoke(cb CallbackFunc, args []any, kwargs map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errtrace.Wrap(errorutil.NewWrapperError(
				ErrCallback, "panic: %v\n%s", r, debug.Stack(),
			))
		}
	}()

	if err := cb(args, kwargs); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrCallback, err))
	}
	return nil
}
