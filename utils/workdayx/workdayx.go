// File: workdayx.go
// Title: Working Day Calculator
// Description: Implements weekend- and holiday-aware date arithmetic:
//              adding and subtracting working days, locating the Nth working
//              day of a month, working-day ordinals, last-working-day tests,
//              and calendar-range day matching.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package workdayx

import (
	"time"

	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/utils/clockx"
)

// HolidaySet is a set of YYYY-MM-DD date strings treated as non-working
// regardless of weekday. A nil set means no holidays.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a holiday set from date strings. Membership tests
// match exact YYYY-MM-DD renderings; entries are stored as given.
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains checks whether the given time's date is a holiday
func (h HolidaySet) Contains(t time.Time) bool {
	if h == nil {
		return false
	}
	_, ok := h[clockx.FormatISODate(t)]
	return ok
}

// ContainsDate checks whether the given YYYY-MM-DD string is a holiday
func (h HolidaySet) ContainsDate(date string) bool {
	if h == nil {
		return false
	}
	_, ok := h[date]
	return ok
}

// IsWorkingDay checks if a day is a weekday and not a holiday
func IsWorkingDay(t time.Time, holidays HolidaySet) bool {
	return clockx.IsWeekday(t) && !holidays.Contains(t)
}

// AddWorkingDays advances a date by n working days, skipping weekends and
// holidays. n must not be negative; use SubtractWorkingDays to move
// backwards. n of zero returns the input unchanged.
func AddWorkingDays(t time.Time, n int, holidays HolidaySet) (time.Time, error) {
	if n < 0 {
		return time.Time{}, negativeDays("workdayx.AddWorkingDays", n)
	}

	cursor := t
	for remaining := n; remaining > 0; {
		cursor = cursor.AddDate(0, 0, 1)
		if IsWorkingDay(cursor, holidays) {
			remaining--
		}
	}
	return cursor, nil
}

// SubtractWorkingDays retreats a date by n working days, skipping weekends
// and holidays. n must not be negative.
func SubtractWorkingDays(t time.Time, n int, holidays HolidaySet) (time.Time, error) {
	if n < 0 {
		return time.Time{}, negativeDays("workdayx.SubtractWorkingDays", n)
	}

	cursor := t
	for remaining := n; remaining > 0; {
		cursor = cursor.AddDate(0, 0, -1)
		if IsWorkingDay(cursor, holidays) {
			remaining--
		}
	}
	return cursor, nil
}

func negativeDays(operation string, n int) *bizerror.Error {
	return bizerror.Newf("working day count must not be negative, got %d", n).
		WithCode(bizerror.CodeInvalidInput).
		WithOperation(operation).
		WithDetail("days", n)
}

// WorkingDayOfMonth finds the working day with the given 1-based ordinal in
// a month. The second return value is false when the month has fewer
// working days than the requested ordinal.
func WorkingDayOfMonth(year, month, ordinal int, holidays HolidaySet) (time.Time, bool) {
	if ordinal < 1 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	cursor := clockx.Date(year, month, 1)
	count := 0
	for cursor.Month() == time.Month(month) {
		if IsWorkingDay(cursor, holidays) {
			count++
			if count == ordinal {
				return cursor, true
			}
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// WorkingDayNumber returns the 1-based working-day ordinal of a date within
// its month. The second return value is false when the date itself is a
// weekend day or holiday.
func WorkingDayNumber(t time.Time, holidays HolidaySet) (int, bool) {
	if !IsWorkingDay(t, holidays) {
		return 0, false
	}

	count := 0
	for cursor := clockx.StartOfMonth(t); !cursor.After(t); cursor = cursor.AddDate(0, 0, 1) {
		if IsWorkingDay(cursor, holidays) {
			count++
		}
	}
	return count, true
}

// IsLastWorkingDay checks whether a date is the last working day of its
// month. Non-working dates are never the last working day.
func IsLastWorkingDay(t time.Time, holidays HolidaySet) bool {
	if !IsWorkingDay(t, holidays) {
		return false
	}

	next, err := AddWorkingDays(t, 1, holidays)
	if err != nil {
		return false
	}
	return !clockx.SameMonth(t, next)
}

// CountMatchingDays walks every calendar day in [from,to] inclusive and
// counts how many render to a YYYY-MM-DD string present in days. Weekend
// days are skipped when excludeWeekends is set. A from after to yields 0.
func CountMatchingDays(from, to time.Time, days []string, excludeWeekends bool) int {
	wanted := NewHolidaySet(days)

	count := 0
	for cursor := clockx.StartOfDay(from); !cursor.After(clockx.StartOfDay(to)); cursor = cursor.AddDate(0, 0, 1) {
		if excludeWeekends && clockx.IsWeekend(cursor) {
			continue
		}
		if wanted.Contains(cursor) {
			count++
		}
	}
	return count
}
