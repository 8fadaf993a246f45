package hrtimer

import (
	"log/slog"
	"time"

	"github.com/ghettovoice/hrtimer/internal/clockutil"
	"github.com/ghettovoice/hrtimer/log"
)

// MaxPollInterval is the upper bound for [Options.PollInterval]. Sleeping
// longer between poll iterations would degrade stop/expiry latency beyond
// the documented precision contract.
const MaxPollInterval = 10 * time.Millisecond

// Options represents optional [Timer] settings.
type Options struct {
	// Args are positional arguments bound to the callback at construction.
	Args []any
	// Kwargs are keyword arguments bound to the callback at construction.
	Kwargs map[string]any
	// Logger is the logger used by the timer.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
	// Clock is the elapsed-time source for timer runs.
	// If nil, the platform monotonic clock is used.
	Clock clockutil.Clock
	// PollInterval is the sleep between poll-loop iterations. Zero selects
	// busy-polling: maximum timing accuracy at the cost of a
	// fully consumed core while the timer runs. Values above
	// [MaxPollInterval] or below zero are rejected at construction.
	PollInterval time.Duration
	// Invoker invokes the callback on expiry.
	// If nil, the callback is called directly with panic containment.
	Invoker Invoker
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o *Options) clock() clockutil.Clock {
	if o == nil || o.Clock == nil {
		return clockutil.System()
	}
	return o.Clock
}

func (o *Options) invoker() Invoker {
	if o == nil || o.Invoker == nil {
		return directInvoker{}
	}
	return o.Invoker
}

func (o *Options) args() []any {
	if o == nil {
		return nil
	}
	return o.Args
}

func (o *Options) kwargs() map[string]any {
	if o == nil {
		return nil
	}
	return o.Kwargs
}

func (o *Options) pollInterval() time.Duration {
	if o == nil {
		return 0
	}
	return o.PollInterval
}
