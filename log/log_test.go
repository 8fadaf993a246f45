package log_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ghettovoice/hrtimer/log"
)

func TestDefault(t *testing.T) {
	if log.Default() != log.Err {
		t.Errorf("Default() = %v, want %v", log.Default(), log.Err)
	}

	log.SetDefault(log.Noop)
	defer log.SetDefault(nil)

	if log.Default() != log.Noop {
		t.Errorf("Default() = %v, want %v", log.Default(), log.Noop)
	}

	log.SetDefault(nil)
	if log.Default() != log.Err {
		t.Errorf("Default() = %v, want %v after reset", log.Default(), log.Err)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected noop logger to be disabled at all levels")
	}
}

func TestFmtValue(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }

	if got := log.FmtValue(pair{1, 2}, false).LogValue().String(); got != "{A:1 B:2}" {
		t.Errorf("FmtValue(%%+v) = %q", got)
	}
	if got := log.FmtValue(pair{1, 2}, true).LogValue().String(); got != "log_test.pair{A:1, B:2}" {
		t.Errorf("FmtValue(%%#v) = %q", got)
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	if got := log.StringValue([]byte("abc")).LogValue().String(); got != "abc" {
		t.Errorf("StringValue() = %q", got)
	}
}

func TestCalcValue(t *testing.T) {
	t.Parallel()

	v := log.CalcValue(func() any { return 42 })
	if got := v.LogValue().Int64(); got != 42 {
		t.Errorf("CalcValue() = %d, want 42", got)
	}
}
