// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation takes and logs the result
//              through a Logger when it is stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-08-02 v0.2.0: Injectable time source, trimmed to Stop/StopWithError

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	level     Level
	fields    Fields
	now       func() time.Time
	startTime time.Time
	stopped   bool
}

// NewTimer starts a timer that logs at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return newTimer(logger, operation, time.Now)
}

func newTimer(logger *Logger, operation string, now func() time.Time) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		level:     LevelDebug,
		fields:    make(Fields),
		now:       now,
		startTime: now(),
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.startTime)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first
// Stop or StopWithError call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.fields, durationFields(t.operation, elapsed))
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		fields := durationFields(t.operation, elapsed)
		fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, t.fields, fields)
	}
	return elapsed
}

func durationFields(operation string, elapsed time.Duration) Fields {
	return Fields{
		"operation":   operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
		"duration":    elapsed.String(),
	}
}
