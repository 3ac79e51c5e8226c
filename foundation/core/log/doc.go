// Package log provides leveled, structured logging for the calendar
// foundation.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with persistent fields, correlation
//              IDs and pluggable formatters (JSON, text, logfmt). Loggers are
//              immutable: the With* methods return configured copies.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-08-02 v0.2.0: Dropped async buffering and timers, sorted field output
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "calendar",
//	})
//	logger.Debug("zone changed", log.Fields{"zone": "Europe/Berlin"})
package log
