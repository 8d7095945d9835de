// Package testutil provides deterministic helpers for tests and the
// scenario harness.
package testutil

import (
	"sync"
	"time"
)

// SteppingClock is a thread-safe deterministic clock: every call to Now
// returns the previous instant advanced by a fixed step.
//
// Version timestamps produced under this clock are reproducible, which
// keeps golden files stable, and strictly increasing, which the
// reconstruction rule relies on (a later version's commit timestamp must be
// after an earlier one's).
type SteppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewSteppingClock creates a clock whose first Now() returns start+step.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{now: start, step: step}
}

// Now advances the clock by one step and returns the new instant.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

// Current returns the last instant handed out without advancing.
func (c *SteppingClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
