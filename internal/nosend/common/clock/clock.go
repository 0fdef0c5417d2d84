package clock

import "time"

// Clock supplies the current instant. The evaluator itself never reads a
// clock; only the gate service and other callers do, which keeps every
// evaluation reproducible with fixed instants in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system wall clock.
type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable clock for tests.
type MockClock struct {
	currentTime time.Time
}

// NewMockClock returns a MockClock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

// Set moves the clock to an absolute instant.
func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
