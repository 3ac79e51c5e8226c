// File: compare.go
// Title: Period Comparisons
// Description: Same period checks and limit checks against the current time.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package calendar

// Mode selects how much of the date the Same* helpers compare.
type Mode int

const (
	// ModeFine compares every field down to the requested one, so the
	// values must share the same absolute period.
	ModeFine Mode = iota
	// ModeCoarse compares only the requested field, e.g. the month number
	// regardless of year.
	ModeCoarse
)

func (m Mode) String() string {
	if m == ModeCoarse {
		return "coarse"
	}
	return "fine"
}

func (m Mode) pick(coarse, fine string) string {
	if m == ModeCoarse {
		return coarse
	}
	return fine
}

// SameTime reports whether a and b render identically with layout.
func (c *Calendar) SameTime(a Moment, layout string, b Moment) (bool, error) {
	left, err := c.Format(a, layout)
	if err != nil {
		return false, err
	}
	right, err := c.Format(b, layout)
	if err != nil {
		return false, err
	}
	return left == right, nil
}

// SameYear reports whether a and b fall in the same year.
func (c *Calendar) SameYear(a, b Moment) (bool, error) {
	return c.SameTime(a, "Y", b)
}

// SameMonth compares months.
func (c *Calendar) SameMonth(a, b Moment, mode Mode) (bool, error) {
	return c.SameTime(a, mode.pick("m", "Ym"), b)
}

// SameWeek compares weekdays. In fine mode the full date must match too.
func (c *Calendar) SameWeek(a, b Moment, mode Mode) (bool, error) {
	return c.SameTime(a, mode.pick("w", "Ymdw"), b)
}

// SameDay compares days.
func (c *Calendar) SameDay(a, b Moment, mode Mode) (bool, error) {
	return c.SameTime(a, mode.pick("d", "Ymd"), b)
}

// SameHour compares hours.
func (c *Calendar) SameHour(a, b Moment, mode Mode) (bool, error) {
	return c.SameTime(a, mode.pick("H", "YmdH"), b)
}

// SameMinute compares minutes.
func (c *Calendar) SameMinute(a, b Moment, mode Mode) (bool, error) {
	return c.SameTime(a, mode.pick("i", "YmdHi"), b)
}

// SameSecond compares seconds.
func (c *Calendar) SameSecond(a, b Moment, mode Mode) (bool, error) {
	return c.SameTime(a, mode.pick("s", "YmdHis"), b)
}

// IsPassTime reports whether m lies at or after now+limit seconds.
func (c *Calendar) IsPassTime(m Moment, limit int64) (bool, error) {
	t, err := c.resolve(m)
	if err != nil {
		return false, err
	}
	return t.Unix() >= c.clock.Now().Unix()+limit, nil
}

// IsPassYear uses a 366 day year when the current year is a leap year.
func (c *Calendar) IsPassYear(m Moment) (bool, error) {
	leap, err := c.IsIntercalaryYear(Now())
	if err != nil {
		return false, err
	}
	limit := SecondsYear
	if leap {
		limit = SecondsLeapYear
	}
	return c.IsPassTime(m, limit)
}

// IsPassMonth uses a 30 day month.
func (c *Calendar) IsPassMonth(m Moment) (bool, error) { return c.IsPassTime(m, SecondsMonth) }

// IsPassWeek uses a 7 day week.
func (c *Calendar) IsPassWeek(m Moment) (bool, error) { return c.IsPassTime(m, SecondsWeek) }

func (c *Calendar) IsPassDay(m Moment) (bool, error) { return c.IsPassTime(m, SecondsDay) }

func (c *Calendar) IsPassHour(m Moment) (bool, error) { return c.IsPassTime(m, SecondsHour) }

func (c *Calendar) IsPassMinute(m Moment) (bool, error) { return c.IsPassTime(m, SecondsMinute) }

// IsPassSecond is IsPassTime with a caller supplied limit.
func (c *Calendar) IsPassSecond(m Moment, seconds int64) (bool, error) {
	return c.IsPassTime(m, seconds)
}
