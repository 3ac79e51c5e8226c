// File: layout.go
// Title: Layout Rendering
// Description: Renders times with the single-letter directive layout and
//              expands the smart-year token.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation
// - 2025-08-09 v0.1.1: Lowercase ay matches once an uppercase AY is present

package calendar

import (
	"strconv"
	"strings"
	"time"
)

const smartYearToken = "AY"

// Format renders m with layout in the calendar zone. An empty layout means
// the calendar's default layout.
func (c *Calendar) Format(m Moment, layout string) (string, error) {
	t, err := c.resolve(m)
	if err != nil {
		return "", err
	}
	return c.render(t, layout), nil
}

// GetDate renders the Unix timestamp ts with layout. A ts of 0 means now.
func (c *Calendar) GetDate(ts int64, layout string) string {
	if ts == 0 {
		return c.render(c.now(), layout)
	}
	return c.render(time.Unix(ts, 0).In(c.Location()), layout)
}

// FormatTime renders t with layout after converting it to the calendar zone.
func (c *Calendar) FormatTime(t time.Time, layout string) string {
	return c.render(t.In(c.Location()), layout)
}

func (c *Calendar) render(t time.Time, layout string) string {
	if layout == "" {
		layout = c.layout
	}
	layout = ExpandSmartYear(layout, t.Year() == c.now().Year())
	return RenderLayout(t, layout)
}

// ExpandSmartYear replaces every AY token. When sameYear is true the token
// and its parenthesised suffix are dropped, otherwise they become "Y" plus
// the suffix. The suffix runs to the last ')' in the layout; an unclosed
// '(' stays literal. Expansion only happens when an uppercase AY is present,
// but then every occurrence matches regardless of case.
func ExpandSmartYear(layout string, sameYear bool) string {
	if !strings.Contains(layout, smartYearToken) {
		return layout
	}

	var b strings.Builder
	rest := layout
	for {
		idx := indexSmartYear(rest)
		if idx < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		rest = rest[idx+len(smartYearToken):]

		suffix := ""
		if strings.HasPrefix(rest, "(") {
			if end := strings.LastIndex(rest, ")"); end > 0 {
				suffix = rest[1:end]
				rest = rest[end+1:]
			}
		}
		if !sameYear {
			b.WriteString("Y")
			b.WriteString(suffix)
		}
	}
	return b.String()
}

// indexSmartYear finds the token ignoring ASCII case. UTF-8 continuation
// bytes never fold to 'a' or 'y'.
func indexSmartYear(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i]|0x20 == 'a' && s[i+1]|0x20 == 'y' {
			return i
		}
	}
	return -1
}

// RenderLayout renders t using the directive letters Y m d H i s w.
// A backslash emits the following character unchanged.
func RenderLayout(t time.Time, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 8)

	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case 'Y':
			writeYear(&b, t.Year())
		case 'm':
			writePadded(&b, int(t.Month()))
		case 'd':
			writePadded(&b, t.Day())
		case 'H':
			writePadded(&b, t.Hour())
		case 'i':
			writePadded(&b, t.Minute())
		case 's':
			writePadded(&b, t.Second())
		case 'w':
			b.WriteString(strconv.Itoa(int(t.Weekday())))
		case '\\':
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func writePadded(b *strings.Builder, v int) {
	if v < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(v))
}

func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	s := strconv.Itoa(year)
	for i := len(s); i < 4; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
