// File: parse_test.go
// Title: Date Expression Parsing Tests
// Description: Tests for absolute layouts, timestamps, the relative grammar
//              and reference expressions.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.3.0: Relative grammar and reference expressions

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

func utc(y int, m time.Month, d, h, min, s int) time.Time {
	return time.Date(y, m, d, h, min, s, 0, time.UTC)
}

func TestParseAbsolute(t *testing.T) {
	cal, _ := newTestCalendar(t)

	testCases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date", "2023-01-01", utc(2023, 1, 1, 0, 0, 0)},
		{"date time", "2023-01-01 12:34:56", utc(2023, 1, 1, 12, 34, 56)},
		{"slashes", "2023/01/02", utc(2023, 1, 2, 0, 0, 0)},
		{"european", "02.01.2023", utc(2023, 1, 2, 0, 0, 0)},
		{"european with time", "02.01.2023 08:15", utc(2023, 1, 2, 8, 15, 0)},
		{"rfc3339 offset", "2023-01-01T12:00:00+02:00", utc(2023, 1, 1, 10, 0, 0)},
		{"iso without zone", "2023-01-01T12:00:00", utc(2023, 1, 1, 12, 0, 0)},
		{"rfc1123", "Sun, 01 Jan 2023 12:00:05 UTC", utc(2023, 1, 1, 12, 0, 5)},
		{"compact", "20230101123456", utc(2023, 1, 1, 12, 34, 56)},
		{"long month", "January 2, 2023", utc(2023, 1, 2, 0, 0, 0)},
		{"timestamp", "@1700000000", utc(2023, 11, 14, 22, 13, 20)},
		{"padded input", "  2023-01-01  ", utc(2023, 1, 1, 0, 0, 0)},
		{"time only", "13:45", utc(2025, 6, 15, 13, 45, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cal.ParseTime(tc.input, "")
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v, want %v", got, tc.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseRelative(t *testing.T) {
	cal, _ := newTestCalendar(t)

	testCases := []struct {
		input string
		want  time.Time
	}{
		{"now", fixedNow},
		{"NOW", fixedNow},
		{"today", utc(2025, 6, 15, 0, 0, 0)},
		{"midnight", utc(2025, 6, 15, 0, 0, 0)},
		{"noon", utc(2025, 6, 15, 12, 0, 0)},
		{"tomorrow", utc(2025, 6, 16, 0, 0, 0)},
		{"yesterday", utc(2025, 6, 14, 0, 0, 0)},
		{"+1 day", utc(2025, 6, 16, 10, 30, 0)},
		{"+1day", utc(2025, 6, 16, 10, 30, 0)},
		{"1 days", utc(2025, 6, 16, 10, 30, 0)},
		{"-2 weeks", utc(2025, 6, 1, 10, 30, 0)},
		{"3 hours ago", utc(2025, 6, 15, 7, 30, 0)},
		{"+90 seconds", utc(2025, 6, 15, 10, 31, 30)},
		{"-15 min", utc(2025, 6, 15, 10, 15, 0)},
		{"+1 fortnight", utc(2025, 6, 29, 10, 30, 0)},
		{"next month", utc(2025, 7, 15, 10, 30, 0)},
		{"last year", utc(2024, 6, 15, 10, 30, 0)},
		{"this week", utc(2025, 6, 9, 10, 30, 0)},
		{"next week", utc(2025, 6, 16, 10, 30, 0)},
		{"last week", utc(2025, 6, 2, 10, 30, 0)},
		{"tomorrow 14:00", utc(2025, 6, 16, 14, 0, 0)},
		{"today 08:00", utc(2025, 6, 15, 8, 0, 0)},
		{"next monday 09:30", utc(2025, 6, 16, 9, 30, 0)},
		{"yesterday 23:59:59", utc(2025, 6, 14, 23, 59, 59)},
		{"friday 9:05", utc(2025, 6, 20, 9, 5, 0)},
		{"tomorrow 2pm", utc(2025, 6, 16, 14, 0, 0)},
		{"next monday 9:30am", utc(2025, 6, 16, 9, 30, 0)},
		{"+1 day 18:00", utc(2025, 6, 16, 18, 0, 0)},
		{"next monday", utc(2025, 6, 16, 0, 0, 0)},
		{"last monday", utc(2025, 6, 9, 0, 0, 0)},
		{"sunday", utc(2025, 6, 15, 0, 0, 0)},
		{"fri", utc(2025, 6, 20, 0, 0, 0)},
		{"next sunday", utc(2025, 6, 22, 0, 0, 0)},
		{"last sunday", utc(2025, 6, 8, 0, 0, 0)},
		{"tomorrow +2 hours", utc(2025, 6, 16, 2, 0, 0)},
		{"+1 week 2 days", utc(2025, 6, 24, 10, 30, 0)},
		{"2024-05-01 +1 week", utc(2024, 5, 8, 0, 0, 0)},
		{"2024-05-01 13:00:00 -1 day", utc(2024, 4, 30, 13, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := cal.ParseTime(tc.input, "")
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v, want %v", got, tc.want)
		})
	}
}

func TestParseMonthOverflow(t *testing.T) {
	cal, _ := newTestCalendar(t)

	got, err := cal.ParseTime("+1 month", "2025-01-31")
	require.NoError(t, err)
	assert.True(t, utc(2025, 3, 3, 0, 0, 0).Equal(got), "got %v", got)
}

func TestDateToTimeRelativeTo(t *testing.T) {
	cal, _ := newTestCalendar(t)

	ts, err := cal.DateToTime("+1 day", "2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 2, 29, 0, 0, 0).Unix(), ts)

	ts, err = cal.DateToTime("next monday", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, utc(2024, 1, 8, 0, 0, 0).Unix(), ts)

	ts, err = cal.DateToTime("2023-01-01", "2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, utc(2023, 1, 1, 0, 0, 0).Unix(), ts, "absolute input ignores the reference")

	_, err = cal.DateToTime("+1 day", "garbage")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
}

func TestParseZone(t *testing.T) {
	cal, _ := newTestCalendar(t, WithZone("Asia/Shanghai"))

	ts, err := cal.DateToTime("2023-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, utc(2022, 12, 31, 16, 0, 0).Unix(), ts)

	ts, err = cal.DateToTime("today", "")
	require.NoError(t, err)
	assert.Equal(t, utc(2025, 6, 14, 16, 0, 0).Unix(), ts)
}

func TestParseErrors(t *testing.T) {
	cal, _ := newTestCalendar(t)

	for _, input := range []string{"", "   ", "not a date", "next", "next blursday", "@abc", "+1 parsec", "5 days from now"} {
		t.Run(input, func(t *testing.T) {
			_, err := cal.DateToTime(input, "")
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, zone := range []string{"UTC", "Asia/Shanghai", "America/New_York"} {
		cal, _ := newTestCalendar(t, WithZone(zone))
		for _, ts := range []int64{1, 86399, 951782400, 1700000000, 1750000000} {
			got, err := cal.DateToTime(cal.GetDate(ts, "Y-m-d H:i:s"), "")
			require.NoError(t, err)
			assert.Equal(t, ts, got, "zone %s", zone)
		}
	}
}
