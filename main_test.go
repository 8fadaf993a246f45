package hrtimer_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Every timer run owns a goroutine; the suite must leave none behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
