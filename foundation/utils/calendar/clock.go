// File: clock.go
// Title: Clock Abstraction
// Description: Clock interface with the system clock and a fixed, manually
//              advanced clock.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package calendar

import (
	"sync"
	"time"
)

// Clock provides the current time. Calendars read the wall clock only
// through it.
type Clock interface {
	Now() time.Time
}

// SystemClock uses the standard time package.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock is a manually controlled clock for tests and replays.
type FixedClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewFixedClock returns a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the clock's current time.
func (f *FixedClock) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Set moves the clock to t.
func (f *FixedClock) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
}

// Advance moves the clock forward by d.
func (f *FixedClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}
