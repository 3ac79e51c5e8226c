// File: calendar.go
// Title: Calendar Type
// Description: Calendar construction, options, the shared instance and zone
//              management.
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
	"time"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
	mdwlog "github.com/msto63/calendar/foundation/core/log"
)

const (
	// DefaultZone is the zone used when none is configured.
	DefaultZone = "PRC"
	// DefaultLayout is used by Format and GetDate when the layout is empty.
	DefaultLayout = "Y-m-d H:i:s"
	// DefaultDayLayout is the day granularity used by GetTimeToTimeDay.
	DefaultDayLayout = "Y-m-d"
)

// DefaultWeekLabels returns the built-in weekday names, Sunday first.
func DefaultWeekLabels() []string {
	return []string{"周天", "周一", "周二", "周三", "周四", "周五", "周六"}
}

// Calendar is a date/time helper bound to one time zone.
type Calendar struct {
	mu   sync.RWMutex
	zone string
	loc  *time.Location

	clock      Clock
	logger     *mdwlog.Logger
	layout     string
	units      UnitTable
	weekLabels []string
}

// Option configures a Calendar in New.
type Option func(*options)

type options struct {
	zone       string
	clock      Clock
	logger     *mdwlog.Logger
	layout     string
	units      UnitTable
	weekLabels []string
}

// WithZone sets the initial zone. An unknown zone makes New fail.
func WithZone(zone string) Option {
	return func(o *options) { o.zone = zone }
}

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithLayout sets the layout used when Format or GetDate get an empty one.
func WithLayout(layout string) Option {
	return func(o *options) { o.layout = layout }
}

// WithUnits sets the unit table used when FormatSecond gets nil.
func WithUnits(units UnitTable) Option {
	return func(o *options) { o.units = units }
}

// WithWeekLabels sets the labels used when GetDateWeekName gets nil.
func WithWeekLabels(labels []string) Option {
	return func(o *options) { o.weekLabels = labels }
}

// New creates a Calendar. Without options it uses DefaultZone, the system
// clock, DefaultLayout, DefaultUnits and DefaultWeekLabels.
func New(opts ...Option) (*Calendar, error) {
	o := options{
		zone:   DefaultZone,
		clock:  SystemClock{},
		layout: DefaultLayout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = mdwlog.GetDefault()
	}
	if o.layout == "" {
		o.layout = DefaultLayout
	}
	if len(o.units) == 0 {
		o.units = DefaultUnits()
	}
	if len(o.weekLabels) == 0 {
		o.weekLabels = DefaultWeekLabels()
	}

	loc, err := LoadLocation(o.zone)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create calendar").
			WithOperation("calendar.New")
	}

	return &Calendar{
		zone:       o.zone,
		loc:        loc,
		clock:      o.clock,
		logger:     o.logger.WithName("calendar"),
		layout:     o.layout,
		units:      append(UnitTable(nil), o.units...),
		weekLabels: append([]string(nil), o.weekLabels...),
	}, nil
}

var (
	instance     *Calendar
	instanceOnce sync.Once
)

// GetInstance returns the process-wide Calendar, creating it with zone on
// the first call. Later calls ignore zone; use SetZone to change it. An
// unknown zone on the first call falls back to UTC and is logged.
func GetInstance(zone string) *Calendar {
	instanceOnce.Do(func() {
		cal, err := New(WithZone(zone))
		if err != nil {
			mdwlog.GetDefault().WithName("calendar").
				LogError(mdwerror.Wrap(err, "shared calendar falls back to UTC"))
			cal, _ = New(WithZone("UTC"))
		}
		instance = cal
	})
	return instance
}

// Default returns GetInstance(DefaultZone).
func Default() *Calendar {
	return GetInstance(DefaultZone)
}

// SetZone switches the calendar to zone. On error the previous zone stays
// active.
func (c *Calendar) SetZone(zone string) error {
	loc, err := LoadLocation(zone)
	if err != nil {
		c.logger.DebugWithErr("zone change rejected", err)
		return mdwerror.Wrap(err, "failed to set zone").
			WithOperation("calendar.SetZone")
	}

	c.mu.Lock()
	prev := c.zone
	c.zone = zone
	c.loc = loc
	c.mu.Unlock()

	c.logger.Debug("zone changed", mdwlog.Fields{"from": prev, "to": zone})
	return nil
}

// Zone returns the active zone name.
func (c *Calendar) Zone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zone
}

// Location returns the active zone.
func (c *Calendar) Location() *time.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loc
}

// Layout returns the default layout.
func (c *Calendar) Layout() string { return c.layout }

// Units returns a copy of the default unit table.
func (c *Calendar) Units() UnitTable { return append(UnitTable(nil), c.units...) }

// WeekLabels returns a copy of the default weekday labels.
func (c *Calendar) WeekLabels() []string { return append([]string(nil), c.weekLabels...) }

// Clock returns the calendar's clock.
func (c *Calendar) Clock() Clock { return c.clock }

func (c *Calendar) now() time.Time {
	return c.clock.Now().In(c.Location())
}
