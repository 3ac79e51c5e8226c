// Package calendar implements a configured date/time helper: zone setup,
// directive based formatting, flexible parsing, human readable durations,
// leap-year checks and "same period" / "limit reached" comparisons.
//
// Package: calendar
// Title: Calendar Helper
// Description: A Calendar owns a time zone, a clock and a few presentation
//              defaults. Every operation resolves its inputs in that zone, so
//              two Calendars with different zones can coexist in one process.
//              GetInstance provides the process-wide shared instance.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial time utilities (parsing, formatting, durations)
// - 2025-07-26 v0.2.0: Timezone cache, compact duration units
// - 2025-08-02 v0.3.0: Reworked into the Calendar type with directive layouts
//
// # Layout directives
//
//	Y  four digit year          m  month, 01-12
//	d  day of month, 01-31      H  hour, 00-23
//	i  minute, 00-59            s  second, 00-59
//	w  weekday, 0 (Sunday) - 6
//	\  emit the next character literally
//
// Any other character is copied as is. The token AY, optionally followed by a
// parenthesised suffix as in "AY(-)m-d", prints the year plus suffix only when
// the value's year differs from the current year:
//
//	cal.Format(calendar.Expr("2025-03-01"), "AY(-)m-d") // "03-01" during 2025
//	cal.Format(calendar.Expr("2024-03-01"), "AY(-)m-d") // "2024-03-01"
//
// # Date expressions
//
// Expressions accepted by DateToTime and Expr moments:
//
//	"2024-05-01", "2024-05-01 13:45:00", "2024/05/01", "01.05.2024",
//	"2024-05-01T13:45:00+02:00", RFC 1123 strings, "@1714567890",
//	"now", "today", "midnight", "noon", "tomorrow", "yesterday",
//	"+1 day", "-2 weeks", "3 hours ago", "next monday", "last month",
//	"tomorrow 14:00", "next friday 9:30am",
//	and an absolute date followed by relative parts: "2024-05-01 +1 week".
//
// "this week", "next week" and "last week" resolve to Monday of the
// respective week at the current time of day.
//
// # Known simplifications
//
// IsIntercalaryYear uses year%4 == 0, so 1900 and 2100 count as leap years.
// IsPassTime reports whether the date lies at or beyond now+limit, i.e. it
// checks a future threshold rather than elapsed time.
package calendar
