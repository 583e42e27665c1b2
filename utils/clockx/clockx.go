// File: clockx.go
// Title: Calendar Clock Utilities
// Description: Implements the clock abstraction and calendar-aware time
//              helpers used by the bizcore date engine: test-substitutable
//              current-time sources, date construction and parsing, period
//              boundary navigation, and weekday predicates.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package clockx

import (
	"time"

	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/utils/stringx"
)

// Common time formats used across the library
const (
	ISODate      = "2006-01-02"
	ISODateTime  = "2006-01-02T15:04:05"
	DateTime     = "2006-01-02 15:04:05"
	CompactDate  = "20060102"
	ShortDate    = "01/02/2006"
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// Clock provides the current time. Implementations must be safe for use
// from multiple goroutines.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant; intended for tests
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a clock frozen at the given instant
func NewFixedClock(instant time.Time) FixedClock {
	return FixedClock{instant: instant}
}

// Now returns the frozen instant
func (c FixedClock) Now() time.Time {
	return c.instant
}

// Date constructs a date at midnight UTC
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// parseFormats lists the formats Parse attempts, most specific first
var parseFormats = []string{
	time.RFC3339,
	ISODateTime,
	DateTime,
	ISODate,
	CompactDate,
	ShortDate,
}

// Parse attempts to parse a time string using the common formats, failing
// with an INVALID_DATE error when nothing matches
func Parse(value string) (time.Time, error) {
	if stringx.IsBlank(value) {
		return time.Time{}, bizerror.New("empty time string").
			WithCode(bizerror.CodeInvalidDate).
			WithOperation("clockx.Parse")
	}

	for _, format := range parseFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, bizerror.Newf("unable to parse time string: %s", value).
		WithCode(bizerror.CodeInvalidDate).
		WithOperation("clockx.Parse").
		WithDetail("input", value)
}

// ParseISODate parses a strict YYYY-MM-DD date string
func ParseISODate(value string) (time.Time, error) {
	t, err := time.Parse(ISODate, value)
	if err != nil {
		return time.Time{}, bizerror.Newf("unable to parse date string: %s", value).
			WithCode(bizerror.CodeInvalidDate).
			WithOperation("clockx.ParseISODate").
			WithDetail("input", value)
	}
	return t, nil
}

// FormatISODate renders a time as YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format(ISODate)
}

// FormatISODateTime renders a time as YYYY-MM-DDTHH:MM:SS
func FormatISODateTime(t time.Time) string {
	return t.Format(ISODateTime)
}

// Format formats a time using a named format or a raw layout string
func Format(t time.Time, format string) string {
	switch format {
	case "iso-date":
		return t.Format(ISODate)
	case "iso-datetime":
		return t.Format(ISODateTime)
	case "datetime":
		return t.Format(DateTime)
	case "compact-date":
		return t.Format(CompactDate)
	case "short-date":
		return t.Format(ShortDate)
	case "log":
		return t.Format(LogTimestamp)
	default:
		return t.Format(format)
	}
}

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// StartOfWeek returns Monday 00:00:00 of the given time's week
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// EndOfWeek returns Sunday 23:59:59.999999999 of the given time's week
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns the first day of the month at 00:00:00
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of the month at 23:59:59.999999999
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// StartOfYear returns January 1st at 00:00:00
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns December 31st at 23:59:59.999999999
func EndOfYear(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), 12, 31, 0, 0, 0, 0, t.Location()))
}

// DaysInMonth returns the number of days of the given month, accounting
// for leap years
func DaysInMonth(year, month int) int {
	return Date(year, month, 1).AddDate(0, 1, -1).Day()
}

// IsWeekend checks if a time falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsWeekday checks if a time falls on Monday through Friday
func IsWeekday(t time.Time) bool {
	return !IsWeekend(t)
}

// SameDay checks if two times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth checks if two times fall in the same calendar month
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
