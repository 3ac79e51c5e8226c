// File: parse.go
// Title: Date Expression Parsing
// Description: Parses absolute dates, Unix timestamps and relative phrases
//              such as "+1 day" or "next monday" against a reference time.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-25
// Modified: 2025-08-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-07-26 v0.1.1: European date layouts
// - 2025-08-02 v0.3.0: Moved into the calendar package
// - 2025-08-09 v0.3.1: Clock times in relative phrases, week-anchored next/last/this week

package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
	mdwlog "github.com/msto63/calendar/foundation/core/log"
)

// directLayouts carry a full date, so they are parsed with the standard
// library and never have fields filled in from the reference time.
var directLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"2006/01/02 15:04",
	"2006/01/02",
	"20060102150405",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// DateToTime parses expr into a Unix timestamp. A non-empty relativeTo is
// parsed first and serves as the reference time for relative parts of expr.
func (c *Calendar) DateToTime(expr, relativeTo string) (int64, error) {
	t, err := c.ParseTime(expr, relativeTo)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// ParseTime is DateToTime returning the time in the calendar zone.
func (c *Calendar) ParseTime(expr, relativeTo string) (time.Time, error) {
	base := c.now()

	if strings.TrimSpace(relativeTo) != "" {
		ref, err := parseExpression(relativeTo, base)
		if err != nil {
			c.logger.DebugWithErr("reference expression rejected", err, mdwlog.Fields{"relative_to": relativeTo})
			return time.Time{}, err
		}
		base = ref
	}

	t, err := parseExpression(expr, base)
	if err != nil {
		c.logger.DebugWithErr("date expression rejected", err, mdwlog.Fields{"expr": expr})
		return time.Time{}, err
	}
	return t, nil
}

func parseExpression(expr string, base time.Time) (time.Time, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return time.Time{}, mdwerror.New("date expression is empty").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("calendar.ParseTime")
	}

	fields := strings.Fields(s)
	if t, ok := applyRelative(lowerAll(fields), base); ok {
		return t, nil
	}
	if t, ok := parseAbsolute(s, base); ok {
		return t, nil
	}

	// absolute date followed by relative parts, e.g. "2024-05-01 +1 week"
	for k := len(fields) - 1; k > 0; k-- {
		abs, ok := parseAbsolute(strings.Join(fields[:k], " "), base)
		if !ok {
			continue
		}
		if t, ok := applyRelative(lowerAll(fields[k:]), abs); ok {
			return t, nil
		}
	}

	return time.Time{}, mdwerror.New("unable to parse date expression").
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("calendar.ParseTime").
		WithDetail("input", expr)
}

func parseAbsolute(s string, base time.Time) (time.Time, bool) {
	loc := base.Location()

	if strings.HasPrefix(s, "@") {
		n, err := strconv.ParseInt(s[1:], 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(n, 0).In(loc), true
	}

	for _, layout := range directLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}

	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: loc,
		TimeFormats:  now.TimeFormats,
	}
	t, err := cfg.With(base).Parse(s)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

type relUnit int

const (
	relSecond relUnit = iota
	relMinute
	relHour
	relDay
	relWeek
	relFortnight
	relMonth
	relYear
)

var relUnits = map[string]relUnit{
	"sec": relSecond, "secs": relSecond, "second": relSecond, "seconds": relSecond,
	"min": relMinute, "mins": relMinute, "minute": relMinute, "minutes": relMinute,
	"hour": relHour, "hours": relHour,
	"day": relDay, "days": relDay,
	"week": relWeek, "weeks": relWeek,
	"fortnight": relFortnight, "fortnights": relFortnight,
	"month": relMonth, "months": relMonth,
	"year": relYear, "years": relYear,
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// applyRelative evaluates a sequence of relative phrases against base.
// It reports false as soon as a token is not part of the grammar.
func applyRelative(tokens []string, base time.Time) (time.Time, bool) {
	if len(tokens) == 0 {
		return time.Time{}, false
	}

	t := base
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok {
		case "now":
			i++
			continue
		case "today", "midnight":
			t = startOfDay(t)
			i++
			continue
		case "noon":
			t = startOfDay(t).Add(12 * time.Hour)
			i++
			continue
		case "tomorrow":
			t = startOfDay(t).AddDate(0, 0, 1)
			i++
			continue
		case "yesterday":
			t = startOfDay(t).AddDate(0, 0, -1)
			i++
			continue
		case "next", "last", "previous", "this":
			if i+1 >= len(tokens) {
				return time.Time{}, false
			}
			target := tokens[i+1]
			if wd, ok := weekdayNames[target]; ok {
				t = shiftToWeekday(t, wd, tok)
			} else if unit, ok := relUnits[target]; ok && unit == relWeek {
				t = mondayOf(t).AddDate(0, 0, 7*directionOf(tok))
			} else if unit, ok := relUnits[target]; ok {
				t = addUnits(t, unit, directionOf(tok))
			} else {
				return time.Time{}, false
			}
			i += 2
			continue
		}

		if wd, ok := weekdayNames[tok]; ok {
			t = shiftToWeekday(t, wd, "this")
			i++
			continue
		}

		if clock, ok := parseClock(tok); ok {
			t = time.Date(t.Year(), t.Month(), t.Day(),
				clock.Hour(), clock.Minute(), clock.Second(), 0, t.Location())
			i++
			continue
		}

		n, unit, consumed, ok := scanAmount(tokens[i:])
		if !ok {
			return time.Time{}, false
		}
		t = addUnits(t, unit, n)
		i += consumed
	}
	return t, true
}

// scanAmount reads "N unit", "N unit ago" or the joined form "+Nunit".
func scanAmount(tokens []string) (n int, unit relUnit, consumed int, ok bool) {
	num, rest := splitNumber(tokens[0])
	if num == "" {
		return 0, 0, 0, false
	}
	v, err := strconv.Atoi(num)
	if err != nil {
		return 0, 0, 0, false
	}

	if rest != "" {
		unit, ok = relUnits[rest]
		consumed = 1
	} else if len(tokens) > 1 {
		unit, ok = relUnits[tokens[1]]
		consumed = 2
	}
	if !ok {
		return 0, 0, 0, false
	}

	if len(tokens) > consumed && tokens[consumed] == "ago" {
		v = -v
		consumed++
	}
	return v, unit, consumed, true
}

// splitNumber splits a leading signed integer from the rest of tok.
func splitNumber(tok string) (num, rest string) {
	end := 0
	if end < len(tok) && (tok[end] == '+' || tok[end] == '-') {
		end++
	}
	digits := end
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == digits {
		return "", tok
	}
	return tok[:end], tok[end:]
}

func directionOf(word string) int {
	switch word {
	case "next":
		return 1
	case "last", "previous":
		return -1
	default:
		return 0
	}
}

func addUnits(t time.Time, unit relUnit, n int) time.Time {
	switch unit {
	case relSecond:
		return t.Add(time.Duration(n) * time.Second)
	case relMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case relHour:
		return t.Add(time.Duration(n) * time.Hour)
	case relDay:
		return t.AddDate(0, 0, n)
	case relWeek:
		return t.AddDate(0, 0, 7*n)
	case relFortnight:
		return t.AddDate(0, 0, 14*n)
	case relMonth:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(n, 0, 0)
	}
}

// shiftToWeekday moves to midnight of the matching weekday. "this" allows
// today, "next" is strictly after today, "last" strictly before.
func shiftToWeekday(t time.Time, wd time.Weekday, word string) time.Time {
	day := startOfDay(t)
	switch directionOf(word) {
	case 1:
		ahead := (int(wd) - int(day.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return day.AddDate(0, 0, ahead)
	case -1:
		back := (int(day.Weekday()) - int(wd) + 7) % 7
		if back == 0 {
			back = 7
		}
		return day.AddDate(0, 0, -back)
	default:
		return day.AddDate(0, 0, (int(wd)-int(day.Weekday())+7)%7)
	}
}

// clockLayouts are the time-of-day forms accepted inside relative phrases,
// e.g. "tomorrow 14:00" or "next monday 9:30am". Tokens are lowercase.
var clockLayouts = []string{"15:04:05", "15:04", "3:04:05pm", "3:04pm", "3pm"}

func parseClock(tok string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if c, err := time.Parse(layout, tok); err == nil {
			return c, true
		}
	}
	return time.Time{}, false
}

// mondayOf keeps the time of day and moves back to Monday of t's week.
// Sunday belongs to the week that started six days earlier.
func mondayOf(t time.Time) time.Time {
	return t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
}

func startOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

func lowerAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.ToLower(f)
	}
	return out
}
