// File: layout_test.go
// Title: Layout Rendering Tests
// Description: Tests for directive rendering, escapes and the smart-year token.
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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

func TestRenderLayout(t *testing.T) {
	// Tuesday
	ts := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)

	testCases := []struct {
		name   string
		layout string
		want   string
	}{
		{"all directives", "Y-m-d H:i:s w", "2024-03-05 07:08:09 2"},
		{"compact", "YmdHis", "20240305070809"},
		{"literals", "Y年m月d日", "2024年03月05日"},
		{"escaped directive", `\Y\-m`, "Y-03"},
		{"escaped backslash", `d\\m`, `05\03`},
		{"trailing backslash", `Y\`, "2024"},
		{"unknown letters are literal", "D, Y", "D, 2024"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderLayout(ts, tc.layout))
		})
	}

	assert.Equal(t, "0099", RenderLayout(time.Date(99, 1, 1, 0, 0, 0, 0, time.UTC), "Y"))
}

func TestExpandSmartYear(t *testing.T) {
	testCases := []struct {
		layout   string
		sameYear bool
		want     string
	}{
		{"AY(-)m-d", true, "m-d"},
		{"AY(-)m-d", false, "Y-m-d"},
		{"AY(年)m月d日", true, "m月d日"},
		{"AY(年)m月d日", false, "Y年m月d日"},
		{"AYm", false, "Ym"},
		{"AYm", true, "m"},
		{"AYm AYd", false, "Ym Yd"},
		{"AYm AYd", true, "m d"},
		{"AY(-m-d", false, "Y(-m-d"},
		{"AY(-m-d", true, "(-m-d"},
		{"ay(-)m", false, "ay(-)m"},
		{"AYm-ay(d)", false, "Ym-Yd"},
		{"AYm-ay(d)", true, "m-"},
		{"AYm \\day", false, "Ym \\dY"},
		{"Y-m-d", false, "Y-m-d"},
	}

	for _, tc := range testCases {
		t.Run(tc.layout, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpandSmartYear(tc.layout, tc.sameYear))
		})
	}
}

func TestFormat(t *testing.T) {
	cal, _ := newTestCalendar(t)

	got, err := cal.Format(Expr("2025-03-01"), "AY(-)m-d")
	require.NoError(t, err)
	assert.Equal(t, "03-01", got)

	got, err = cal.Format(Expr("2024-03-01"), "AY(-)m-d")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got)

	got, err = cal.Format(Unix(1700000000), "")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14 22:13:20", got)

	got, err = cal.Format(Now(), "H:i")
	require.NoError(t, err)
	assert.Equal(t, "10:30", got)

	_, err = cal.Format(Expr("definitely not a date"), "Y")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidFormat))
}

func TestGetDateMatchesFormat(t *testing.T) {
	cal, _ := newTestCalendar(t)

	for _, ts := range []int64{0, 1, 1700000000, 951782400} {
		want, err := cal.Format(Unix(ts), "Y-m-d H:i:s")
		require.NoError(t, err)
		if ts == 0 {
			want, err = cal.Format(Now(), "Y-m-d H:i:s")
			require.NoError(t, err)
		}
		assert.Equal(t, want, cal.GetDate(ts, "Y-m-d H:i:s"))
	}

	assert.Equal(t, "2025-06-15 10:30:00", cal.GetDate(0, ""))
	assert.Equal(t, "15.06.2025", cal.FormatTime(fixedNow, "d.m.Y"))
}
