// File: moment.go
// Title: Operation Inputs
// Description: Moment values accepted by the Calendar operations: timestamps,
//              date expressions or "now".
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package calendar

import (
	"strconv"
	"time"
)

type momentKind int

const (
	momentNow momentKind = iota
	momentUnix
	momentExpr
)

// Moment is an operation input: a Unix timestamp, a date expression that
// still has to be parsed, or the zero value meaning "now".
type Moment struct {
	kind momentKind
	unix int64
	expr string
}

// Now returns the moment that resolves to the calendar clock's current time.
func Now() Moment { return Moment{} }

// Unix returns a moment for a Unix timestamp in seconds.
func Unix(ts int64) Moment { return Moment{kind: momentUnix, unix: ts} }

// Expr returns a moment for a date expression, parsed in the calendar zone.
func Expr(expr string) Moment { return Moment{kind: momentExpr, expr: expr} }

// FromTime returns a moment for t, truncated to whole seconds.
func FromTime(t time.Time) Moment { return Unix(t.Unix()) }

// IsNow reports whether m is the "now" moment.
func (m Moment) IsNow() bool { return m.kind == momentNow }

// IsExpr reports whether m carries an unparsed expression.
func (m Moment) IsExpr() bool { return m.kind == momentExpr }

func (m Moment) String() string {
	switch m.kind {
	case momentUnix:
		return "@" + strconv.FormatInt(m.unix, 10)
	case momentExpr:
		return m.expr
	default:
		return "now"
	}
}

// resolve turns m into a time in the calendar zone.
func (c *Calendar) resolve(m Moment) (time.Time, error) {
	switch m.kind {
	case momentUnix:
		return time.Unix(m.unix, 0).In(c.Location()), nil
	case momentExpr:
		return c.ParseTime(m.expr, "")
	default:
		return c.now(), nil
	}
}
