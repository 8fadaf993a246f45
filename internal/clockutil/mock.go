package clockutil

import (
	"sync"
	"time"
)

// Mock is a manually advanced [Clock] for deterministic tests.
// Time stands still until [Mock.Advance] is called.
type Mock struct {
	mu      sync.Mutex
	now     time.Time
	syncErr error
}

// NewMock creates a mock clock positioned at an arbitrary fixed instant.
func NewMock() *Mock {
	return &Mock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Advance moves the mock clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// FailSynchronize makes all subsequent Synchronize calls return err.
func (m *Mock) FailSynchronize(err error) {
	m.mu.Lock()
	m.syncErr = err
	m.mu.Unlock()
}

// Now returns the current mock time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Mock) Synchronize() (Reference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.syncErr != nil {
		return Reference{}, m.syncErr
	}
	return Reference{Wall: m.now}, nil
}

func (m *Mock) ElapsedSince(ref Reference) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now.Sub(ref.Wall).Truncate(time.Microsecond)
}
