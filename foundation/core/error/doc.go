// Package error provides the structured error type used across the calendar
// foundation.
//
// Package: error
// Title: Calendar Error Handling
// Description: Implements an error type that carries a code, a severity, the
//              failing operation and free-form details. Parse failures, bad
//              label tables and configuration problems all surface through it
//              so callers can branch on codes instead of matching strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-02 v0.2.0: Reduced code set to the calendar domain, dropped stack capture
//
// Usage:
//
//	import mdwerror "github.com/msto63/calendar/foundation/core/error"
//
//	err := mdwerror.New("unable to parse date").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithOperation("calendar.DateToTime").
//		WithDetail("input", "not a date")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// report bad input
//	}
package error
