// File: clockx_test.go
// Title: Calendar Clock Tests
// Description: Test suite for clock sources, parsing, boundary navigation,
//              and weekday predicates.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package clockx

import (
	"testing"
	"time"

	bizerror "github.com/msto63/bizcore/core/error"
)

func TestFixedClock(t *testing.T) {
	instant := Date(2024, 1, 15)
	clock := NewFixedClock(instant)

	if !clock.Now().Equal(instant) {
		t.Errorf("FixedClock.Now() = %v, want %v", clock.Now(), instant)
	}
	if !clock.Now().Equal(clock.Now()) {
		t.Error("FixedClock must be stable across calls")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
		want    time.Time
	}{
		{"RFC3339", "2024-01-15T12:00:00Z", false, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		{"ISO datetime", "2024-01-15T12:30:45", false, time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)},
		{"datetime with space", "2024-01-15 12:00:00", false, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		{"ISO date", "2024-01-15", false, Date(2024, 1, 15)},
		{"compact date", "20240115", false, Date(2024, 1, 15)},
		{"empty", "", true, time.Time{}},
		{"blank", "   ", true, time.Time{}},
		{"garbage", "not a date", true, time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error", tc.input)
				}
				if bizerror.GetCode(err) != bizerror.CodeInvalidDate {
					t.Errorf("code = %v, want INVALID_DATE", bizerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	got, err := ParseISODate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(Date(2024, 2, 29)) {
		t.Errorf("ParseISODate = %v", got)
	}

	if _, err := ParseISODate("2023-02-29"); err == nil {
		t.Error("non-leap Feb 29 should fail")
	}
	if _, err := ParseISODate("15/01/2024"); err == nil {
		t.Error("non-ISO format should fail")
	}
}

func TestBoundaries(t *testing.T) {
	// Wednesday mid-month
	ref := time.Date(2024, 1, 17, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"start of day", StartOfDay(ref), Date(2024, 1, 17)},
		{"start of week", StartOfWeek(ref), Date(2024, 1, 15)},
		{"end of week day", StartOfDay(EndOfWeek(ref)), Date(2024, 1, 21)},
		{"start of month", StartOfMonth(ref), Date(2024, 1, 1)},
		{"end of month day", StartOfDay(EndOfMonth(ref)), Date(2024, 1, 31)},
		{"start of year", StartOfYear(ref), Date(2024, 1, 1)},
		{"end of year day", StartOfDay(EndOfYear(ref)), Date(2024, 12, 31)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	// 2024-01-21 is a Sunday; its week starts Monday the 15th
	if got := StartOfWeek(Date(2024, 1, 21)); !got.Equal(Date(2024, 1, 15)) {
		t.Errorf("StartOfWeek(Sunday) = %v, want 2024-01-15", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		year, month, want int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2024, 4, 30},
		{2000, 2, 29}, // divisible by 400
		{2100, 2, 28}, // divisible by 100 but not 400
	}

	for _, tc := range testCases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestWeekendPredicates(t *testing.T) {
	saturday := Date(2024, 1, 20)
	monday := Date(2024, 1, 15)

	if !IsWeekend(saturday) || IsWeekday(saturday) {
		t.Error("Saturday should be a weekend day")
	}
	if IsWeekend(monday) || !IsWeekday(monday) {
		t.Error("Monday should be a weekday")
	}
}

func TestSameDayAndMonth(t *testing.T) {
	a := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	c := Date(2024, 2, 15)

	if !SameDay(a, b) {
		t.Error("same calendar day expected")
	}
	if SameDay(a, c) || SameMonth(a, c) {
		t.Error("different months expected")
	}
	if !SameMonth(a, b) {
		t.Error("same month expected")
	}
}

func TestFormat(t *testing.T) {
	ref := time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)

	testCases := []struct {
		format string
		want   string
	}{
		{"iso-date", "2024-01-15"},
		{"iso-datetime", "2024-01-15T12:30:45"},
		{"datetime", "2024-01-15 12:30:45"},
		{"compact-date", "20240115"},
		{"2006/01", "2024/01"}, // raw layout passthrough
	}

	for _, tc := range testCases {
		if got := Format(ref, tc.format); got != tc.want {
			t.Errorf("Format(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}
