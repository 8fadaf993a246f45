package hrtimer

import (
	"errors"
	"testing"
)

func TestDirectInvoker(t *testing.T) {
	t.Parallel()

	var gotArgs []any
	var gotKwargs map[string]any
	err := directInvoker{}.Invoke(func(args []any, kwargs map[string]any) error {
		gotArgs = args
		gotKwargs = kwargs
		return nil
	}, []any{"a", 1}, map[string]any{"k": true})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "a" || gotArgs[1] != 1 {
		t.Errorf("Invoke() delivered args %v", gotArgs)
	}
	if len(gotKwargs) != 1 || gotKwargs["k"] != true {
		t.Errorf("Invoke() delivered kwargs %v", gotKwargs)
	}
}

func TestDirectInvoker_Error(t *testing.T) {
	t.Parallel()

	cbErr := errors.New("boom")
	err := directInvoker{}.Invoke(func([]any, map[string]any) error {
		return cbErr
	}, nil, nil)

	if !errors.Is(err, ErrCallback) {
		t.Errorf("Invoke() error = %v, want %v", err, ErrCallback)
	}
	if !errors.Is(err, cbErr) {
		t.Errorf("Invoke() error = %v, want wrapped %v", err, cbErr)
	}
}

func TestDirectInvoker_Panic(t *testing.T) {
	t.Parallel()

	err := directInvoker{}.Invoke(func([]any, map[string]any) error {
		panic("kaboom")
	}, nil, nil)

	if !errors.Is(err, ErrCallback) {
		t.Errorf("Invoke() error = %v, want %v", err, ErrCallback)
	}
}

func TestInvokerFunc(t *testing.T) {
	t.Parallel()

	var invoked bool
	inv := InvokerFunc(func(cb CallbackFunc, args []any, kwargs map[string]any) error {
		invoked = true
		return cb(args, kwargs)
	})

	if err := inv.Invoke(func([]any, map[string]any) error { return nil }, nil, nil); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !invoked {
		t.Error("Expected the adapter function to be invoked")
	}
}
