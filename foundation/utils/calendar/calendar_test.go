// File: calendar_test.go
// Title: Calendar Construction Tests
// Description: Tests for options, the shared instance, zone switching and
//              concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package calendar

import (
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
	mdwlog "github.com/msto63/calendar/foundation/core/log"
)

// Sunday, 2025-06-15 10:30:00 UTC
var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestCalendar(t *testing.T, opts ...Option) (*Calendar, *FixedClock) {
	t.Helper()
	clock := NewFixedClock(fixedNow)
	all := append([]Option{WithZone("UTC"), WithClock(clock), WithLogger(mdwlog.Discard())}, opts...)
	cal, err := New(all...)
	require.NoError(t, err)
	return cal, clock
}

func TestNewDefaults(t *testing.T) {
	cal, err := New(WithLogger(mdwlog.Discard()))
	require.NoError(t, err)

	assert.Equal(t, DefaultZone, cal.Zone())
	assert.Equal(t, DefaultLayout, cal.Layout())
	assert.Equal(t, DefaultUnits(), cal.Units())
	assert.Equal(t, DefaultWeekLabels(), cal.WeekLabels())
	assert.IsType(t, SystemClock{}, cal.Clock())
}

func TestNewOptions(t *testing.T) {
	units, err := NewUnits("s", "m", "h", "d", "w", "mo", "y")
	require.NoError(t, err)

	cal, _ := newTestCalendar(t,
		WithLayout("d.m.Y"),
		WithUnits(units),
		WithWeekLabels([]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}),
	)

	assert.Equal(t, "15.06.2025", cal.GetDate(0, ""))
	got, ok := cal.FormatSecond(90, nil)
	assert.True(t, ok)
	assert.Equal(t, "1m", got)
	name, err := cal.GetDateWeekName(0, nil)
	require.NoError(t, err)
	assert.Equal(t, "Su", name)
}

func TestNewUnknownZone(t *testing.T) {
	_, err := New(WithZone("Nowhere/Atlantis"), WithLogger(mdwlog.Discard()))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestSetZone(t *testing.T) {
	cal, _ := newTestCalendar(t)

	assert.Equal(t, "2023-11-14 22:13:20", cal.GetDate(1700000000, ""))

	require.NoError(t, cal.SetZone("Asia/Shanghai"))
	assert.Equal(t, "Asia/Shanghai", cal.Zone())
	assert.Equal(t, "Asia/Shanghai", cal.Location().String())
	assert.Equal(t, "2023-11-15 06:13:20", cal.GetDate(1700000000, ""))

	err := cal.SetZone("Invalid/Zone")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	assert.Equal(t, "Asia/Shanghai", cal.Zone(), "failed change keeps the previous zone")

	assert.Error(t, cal.SetZone(""))
}

func TestInstancesKeepOwnZone(t *testing.T) {
	utc, _ := newTestCalendar(t)
	tokyo, _ := newTestCalendar(t, WithZone("Asia/Tokyo"))

	assert.Equal(t, "22", utc.GetDate(1700000000, "H"))
	assert.Equal(t, "07", tokyo.GetDate(1700000000, "H"))
	assert.Equal(t, "Local", time.Local.String())
}

func TestGetInstance(t *testing.T) {
	first := GetInstance("Europe/Berlin")
	second := GetInstance("America/New_York")
	require.NotNil(t, first)

	assert.Same(t, first, second)
	assert.Same(t, first, Default())
	assert.Equal(t, "Europe/Berlin", second.Zone(), "later zones are ignored")
}

func TestLoadLocationCache(t *testing.T) {
	a, err := LoadLocation("Europe/Paris")
	require.NoError(t, err)
	b, err := LoadLocation(" Europe/Paris ")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestConcurrentUse(t *testing.T) {
	cal, _ := newTestCalendar(t)
	zones := []string{"UTC", "Asia/Shanghai", "Europe/Berlin"}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, cal.SetZone(zones[i%len(zones)]))
		}(i)
		go func() {
			defer wg.Done()
			_, err := cal.Format(Unix(1700000000), "Y-m-d")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Contains(t, zones, cal.Zone())
}

func TestFixedClock(t *testing.T) {
	clock := NewFixedClock(fixedNow)
	clock.Advance(90 * time.Minute)
	assert.Equal(t, fixedNow.Add(90*time.Minute), clock.Now())

	clock.Set(time.Time{})
	assert.True(t, clock.Now().IsZero())
}

func TestMomentString(t *testing.T) {
	assert.Equal(t, "now", Now().String())
	assert.Equal(t, "@42", Unix(42).String())
	assert.Equal(t, "tomorrow", Expr("tomorrow").String())
	assert.Equal(t, Unix(fixedNow.Unix()), FromTime(fixedNow))
	assert.True(t, Moment{}.IsNow())
	assert.False(t, Expr("x").IsNow())
}
