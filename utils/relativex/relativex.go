// File: relativex.go
// Title: Relative Time Formatter
// Description: Implements graduated, localized "time ago" formatting based
//              on civil-calendar differences: whole years and months of
//              varying length, weeks and days, then clock units.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package relativex

import (
	"fmt"
	"strings"
	"time"

	"github.com/msto63/bizcore/core/i18n"
)

// Formatter renders the distance between two instants as a localized,
// graduated phrase
type Formatter struct {
	Lexicon *i18n.Lexicon
}

// New creates a formatter using the default Spanish lexicon
func New() *Formatter {
	return &Formatter{Lexicon: i18n.Default()}
}

// Difference is a civil-calendar distance between two instants. Units are
// non-uniform: a month is one calendar month regardless of its day count.
type Difference struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether all components are zero
func (d Difference) IsZero() bool {
	return d == Difference{}
}

// Between computes the civil-calendar difference between two instants.
// Argument order does not matter; the absolute distance is returned. All
// components are non-negative.
func Between(a, b time.Time) Difference {
	start, end := a, b
	if start.After(end) {
		start, end = end, start
	}

	y1, mo1, _ := start.Date()
	y2, mo2, _ := end.Date()

	// Whole months between the two instants; the anchor is start advanced
	// by that many months with the day clamped to the target month's length,
	// so a month-end start never over-counts the month.
	months := (y2-y1)*12 + int(mo2) - int(mo1)
	anchor := addMonthsClamped(start, months)
	if anchor.After(end) {
		months--
		anchor = addMonthsClamped(start, months)
	}

	days := calendarDaysBetween(anchor, end)

	h1, mi1, s1 := anchor.Clock()
	h2, mi2, s2 := end.Clock()
	hours := h2 - h1
	minutes := mi2 - mi1
	seconds := s2 - s1

	// Borrow from the next larger unit; days stays non-negative because
	// the anchor never lies after end
	if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
		days--
	}

	return Difference{
		Years:   months / 12,
		Months:  months % 12,
		Weeks:   days / 7,
		Days:    days % 7,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}

// addMonthsClamped shifts t by the given number of calendar months,
// clamping the day to the target month's length instead of letting it
// normalize into the following month.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()

	first := time.Date(y, mo+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, h, mi, s, t.Nanosecond(), t.Location())
}

// calendarDaysBetween counts the civil days from a's calendar date to b's
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	aDay := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bDay := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}

// Format renders the distance from now back to target. With full set, every
// non-zero unit is included; otherwise only the two most significant ones.
// A zero difference yields the lexicon's "just now" literal.
func (f *Formatter) Format(now, target time.Time, full bool) string {
	lex := f.Lexicon
	if lex == nil {
		lex = i18n.Default()
	}

	diff := Between(now, target)

	units := []struct {
		value int
		unit  string
	}{
		{diff.Years, i18n.UnitYear},
		{diff.Months, i18n.UnitMonth},
		{diff.Weeks, i18n.UnitWeek},
		{diff.Days, i18n.UnitDay},
		{diff.Hours, i18n.UnitHour},
		{diff.Minutes, i18n.UnitMinute},
		{diff.Seconds, i18n.UnitSecond},
	}

	var parts []string
	for _, u := range units {
		if u.value > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", u.value, lex.UnitName(u.unit, u.value)))
		}
	}

	if len(parts) == 0 {
		return lex.JustNow()
	}

	if !full && len(parts) > 2 {
		parts = parts[:2]
	}

	return lex.Ago() + " " + strings.Join(parts, ", ")
}
