// File: days.go
// Title: Day Level Helpers
// Description: Weekday labels, leap-year checks and day distances.
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

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

// DaySpan is the result of GetTimeToTimeDay: both normalised timestamps and
// the distance between them in days.
type DaySpan struct {
	From int64
	To   int64
	Days float64
}

// GetDateWeekName returns the label for the weekday of ts (0 means now).
// labels are indexed Sunday first; nil means the calendar's labels.
func (c *Calendar) GetDateWeekName(ts int64, labels []string) (string, error) {
	if labels == nil {
		labels = c.weekLabels
	}
	day, _ := strconv.Atoi(c.GetDate(ts, "w"))
	if day >= len(labels) {
		return "", mdwerror.Newf("no label for weekday %d", day).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("calendar.GetDateWeekName").
			WithDetail("labels", len(labels))
	}
	return labels[day], nil
}

// GetTimeIntercalary estimates the number of leap years between two years:
// |from-to|/4, minus one unless to is itself divisible by four.
func (c *Calendar) GetTimeIntercalary(from, to int64) int64 {
	diff := from - to
	if diff < 0 {
		diff = -diff
	}
	n := diff / 4
	if to%4 != 0 {
		n--
	}
	return n
}

// GetTimeToTimeDay measures from..to in days. Expression inputs are first
// truncated to dayLayout (DefaultDayLayout when empty); a now moment for to
// uses the exact current timestamp.
func (c *Calendar) GetTimeToTimeDay(from, to Moment, dayLayout string) (DaySpan, error) {
	if dayLayout == "" {
		dayLayout = DefaultDayLayout
	}

	fromTs, err := c.dayTimestamp(from, dayLayout)
	if err != nil {
		return DaySpan{}, err
	}

	var toTs int64
	if to.IsNow() {
		toTs = c.clock.Now().Unix()
	} else if toTs, err = c.dayTimestamp(to, dayLayout); err != nil {
		return DaySpan{}, err
	}

	return DaySpan{
		From: fromTs,
		To:   toTs,
		Days: float64(toTs-fromTs) / float64(SecondsDay),
	}, nil
}

func (c *Calendar) dayTimestamp(m Moment, dayLayout string) (int64, error) {
	if !m.IsExpr() {
		t, err := c.resolve(m)
		if err != nil {
			return 0, err
		}
		return t.Unix(), nil
	}

	day, err := c.Format(m, dayLayout)
	if err != nil {
		return 0, err
	}
	ts, err := c.DateToTime(day, "")
	if err != nil {
		return 0, mdwerror.Wrap(err, "day layout does not round-trip").
			WithOperation("calendar.GetTimeToTimeDay").
			WithDetail("layout", dayLayout)
	}
	return ts, nil
}

// IsIntercalaryYear reports whether the year of m is divisible by four.
// Century years are not special-cased.
func (c *Calendar) IsIntercalaryYear(m Moment) (bool, error) {
	year, err := c.Format(m, "Y")
	if err != nil {
		return false, err
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false, mdwerror.Wrap(err, "invalid year").
			WithCode(mdwerror.CodeInternal).
			WithOperation("calendar.IsIntercalaryYear")
	}
	return y%4 == 0, nil
}
