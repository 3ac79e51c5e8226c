// File: days_test.go
// Title: Day Level Helper Tests
// Description: Tests for weekday labels, leap years and day distances.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

func TestGetDateWeekName(t *testing.T) {
	cal, _ := newTestCalendar(t)

	// 2023-01-01 was a Sunday
	name, err := cal.GetDateWeekName(1672531200, nil)
	require.NoError(t, err)
	assert.Equal(t, "周天", name)

	name, err = cal.GetDateWeekName(1672531200+3*SecondsDay, nil)
	require.NoError(t, err)
	assert.Equal(t, "周三", name)

	name, err = cal.GetDateWeekName(0, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"})
	require.NoError(t, err)
	assert.Equal(t, "Sun", name)

	// Saturday needs index 6
	_, err = cal.GetDateWeekName(1672531200-SecondsDay, []string{"Sun", "Mon"})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange))
}

func TestIsIntercalaryYear(t *testing.T) {
	cal, _ := newTestCalendar(t)

	testCases := []struct {
		input string
		want  bool
	}{
		{"2024-01-01", true},
		{"2023-06-01", false},
		{"2000-12-31", true},
		// century years are not special-cased
		{"1900-06-01", true},
		{"2100-01-01", true},
	}

	for _, tc := range testCases {
		got, err := cal.IsIntercalaryYear(Expr(tc.input))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.input)
	}

	got, err := cal.IsIntercalaryYear(Now())
	require.NoError(t, err)
	assert.False(t, got, "2025")

	got, err = cal.IsIntercalaryYear(Unix(951782400))
	require.NoError(t, err)
	assert.True(t, got)

	_, err = cal.IsIntercalaryYear(Expr("garbage"))
	assert.Error(t, err)
}

func TestGetTimeIntercalary(t *testing.T) {
	cal, _ := newTestCalendar(t)

	assert.Equal(t, int64(6), cal.GetTimeIntercalary(2000, 2024))
	assert.Equal(t, int64(6), cal.GetTimeIntercalary(2024, 2000))
	assert.Equal(t, int64(4), cal.GetTimeIntercalary(2000, 2023))
	assert.Equal(t, int64(0), cal.GetTimeIntercalary(2024, 2024))
	assert.Equal(t, int64(-1), cal.GetTimeIntercalary(2023, 2023))
}

func TestGetTimeToTimeDay(t *testing.T) {
	cal, _ := newTestCalendar(t)

	span, err := cal.GetTimeToTimeDay(Expr("2023-01-01"), Expr("2023-01-03"), "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, span.Days)
	assert.Equal(t, int64(1672531200), span.From)
	assert.Equal(t, int64(1672531200+2*SecondsDay), span.To)

	// times of day are dropped by the day layout
	span, err = cal.GetTimeToTimeDay(Expr("2023-01-01 23:00:00"), Expr("2023-01-03 01:00:00"), "Y-m-d")
	require.NoError(t, err)
	assert.Equal(t, 2.0, span.Days)

	span, err = cal.GetTimeToTimeDay(Expr("2023-01-03"), Expr("2023-01-01"), "")
	require.NoError(t, err)
	assert.Equal(t, -2.0, span.Days)

	// timestamps are used as given
	span, err = cal.GetTimeToTimeDay(Unix(0), Unix(43200), "")
	require.NoError(t, err)
	assert.Equal(t, 0.5, span.Days)

	// an unset end is the exact current time
	span, err = cal.GetTimeToTimeDay(Expr("2025-06-14"), Now(), "")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Unix(), span.To)
	assert.InDelta(t, 1.4375, span.Days, 1e-9)

	// hour granularity
	span, err = cal.GetTimeToTimeDay(Expr("2023-01-01 06:59:00"), Expr("2023-01-01 18:10:00"), "Y-m-d H:00:00")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, span.Days, 1e-9)

	_, err = cal.GetTimeToTimeDay(Expr("bogus"), Now(), "")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))

	_, err = cal.GetTimeToTimeDay(Expr("2023-01-01"), Expr("2023-01-02"), `\x\y`)
	assert.Error(t, err, "a layout that does not parse back fails")
}
