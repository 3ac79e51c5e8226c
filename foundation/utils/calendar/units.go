// File: units.go
// Title: Duration Units
// Description: Unit tables and human readable rendering of second counts.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-07-26 v0.1.1: Compact duration units
// - 2025-08-02 v0.3.0: Moved into the calendar package

package calendar

import (
	"sort"
	"strconv"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

// Duration thresholds in seconds. Months count as 30 days.
const (
	SecondsMinute   int64 = 60
	SecondsHour     int64 = 3600
	SecondsDay      int64 = 86400
	SecondsWeek     int64 = 604800
	SecondsMonth    int64 = 2592000
	SecondsYear     int64 = 31536000
	SecondsLeapYear int64 = 31622400
)

// Unit maps a threshold in seconds to a label.
type Unit struct {
	Seconds int64
	Label   string
}

// UnitTable is the label set used by FormatSecond. The entry with threshold
// 0 labels raw seconds. Order does not matter.
type UnitTable []Unit

var unitThresholds = []int64{0, SecondsMinute, SecondsHour, SecondsDay, SecondsWeek, SecondsMonth, SecondsYear}

// DefaultUnits returns the built-in table.
func DefaultUnits() UnitTable {
	units, _ := NewUnits("秒", "分钟", "小时", "天", "周", "月", "年")
	return units
}

// NewUnits builds a table from seven labels ordered second, minute, hour,
// day, week, month, year.
func NewUnits(labels ...string) (UnitTable, error) {
	if len(labels) != len(unitThresholds) {
		return nil, mdwerror.Newf("expected %d unit labels, got %d", len(unitThresholds), len(labels)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("calendar.NewUnits")
	}
	units := make(UnitTable, len(labels))
	for i, label := range labels {
		units[i] = Unit{Seconds: unitThresholds[i], Label: label}
	}
	return units, nil
}

// Label returns the label stored for threshold seconds.
func (u UnitTable) Label(seconds int64) (string, bool) {
	for _, unit := range u {
		if unit.Seconds == seconds {
			return unit.Label, true
		}
	}
	return "", false
}

func (u UnitTable) sorted() UnitTable {
	out := append(UnitTable(nil), u...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seconds < out[j].Seconds })
	return out
}

// FormatSecond renders seconds as "<count><label>" using the largest unit
// that fits at least once; values under a minute use the 0-threshold label
// and the raw count. A nil table means the calendar's table. It reports
// false when no entry applies.
func (c *Calendar) FormatSecond(seconds int64, units UnitTable) (string, bool) {
	if units == nil {
		units = c.units
	}
	return formatSecond(seconds, units)
}

func formatSecond(seconds int64, units UnitTable) (string, bool) {
	if len(units) == 0 {
		return "", false
	}
	table := units.sorted()

	if seconds < SecondsMinute {
		label, ok := table.Label(0)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(seconds, 10) + label, true
	}

	for i := len(table) - 1; i >= 0; i-- {
		unit := table[i]
		if unit.Seconds <= 0 {
			continue
		}
		if n := seconds / unit.Seconds; n >= 1 {
			return strconv.FormatInt(n, 10) + unit.Label, true
		}
	}
	return "", false
}
