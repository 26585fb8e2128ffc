package clock

import "time"

// Clock is the source of move and status timestamps. Tie-breaking between
// equal-scoring moves compares these timestamps, so tests inject a fixed
// clock to make winners deterministic.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
