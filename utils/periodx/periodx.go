// File: periodx.go
// Title: Period Codec
// Description: Implements encoding, decoding, validation, and arithmetic for
//              integer calendar periods in YYYY (year) and YYYYMM
//              (year-month) form, plus localized month/year formatting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package periodx

import (
	"fmt"
	"strconv"
	"time"

	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/core/i18n"
	"github.com/msto63/bizcore/utils/clockx"
)

// Default inclusive year range accepted by ValidateDefault
const (
	DefaultYearFrom = 2000
	DefaultYearTo   = 2100
)

// Expected-length selectors for Validate
const (
	LengthAny       = 0
	LengthYear      = 4
	LengthYearMonth = 6
)

// Period is a decoded calendar period. Month is 0 for year-only periods.
type Period struct {
	Year  int
	Month int
}

// IsYearOnly reports whether the period carries no month component
func (p Period) IsYearOnly() bool {
	return p.Month == 0
}

// Encode renders the period back to its integer form
func (p Period) Encode() int {
	if p.IsYearOnly() {
		return p.Year
	}
	return p.Year*100 + p.Month
}

// String renders the period as YYYY or YYYY-MM
func (p Period) String() string {
	if p.IsYearOnly() {
		return strconv.Itoa(p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Decode parses an integer period. The decimal rendering must have exactly
// 4 digits (YYYY) or 6 digits (YYYYMM with month in [1,12]); anything else
// fails with INVALID_PERIOD.
func Decode(period int) (Period, error) {
	if period <= 0 {
		return Period{}, invalidPeriod(period, "period must be positive")
	}

	switch len(strconv.Itoa(period)) {
	case 4:
		return Period{Year: period}, nil
	case 6:
		month := period % 100
		if month < 1 || month > 12 {
			return Period{}, invalidPeriod(period, fmt.Sprintf("month %02d outside [1,12]", month))
		}
		return Period{Year: period / 100, Month: month}, nil
	default:
		return Period{}, invalidPeriod(period, "period must have 4 or 6 digits")
	}
}

func invalidPeriod(period int, reason string) *bizerror.Error {
	return bizerror.Newf("invalid period %d: %s", period, reason).
		WithCode(bizerror.CodeInvalidPeriod).
		WithOperation("periodx.Decode").
		WithDetail("period", period)
}

// Validate checks a period against a year range and an expected length.
// expectLen is LengthAny, LengthYear, or LengthYearMonth. Validate never
// returns an error; any malformed input yields false.
func Validate(period, yearFrom, yearTo, expectLen int) bool {
	decoded, err := Decode(period)
	if err != nil {
		return false
	}

	switch expectLen {
	case LengthAny:
	case LengthYear:
		if !decoded.IsYearOnly() {
			return false
		}
	case LengthYearMonth:
		if decoded.IsYearOnly() {
			return false
		}
	default:
		return false
	}

	return decoded.Year >= yearFrom && decoded.Year <= yearTo
}

// ValidateDefault checks a period of either form against [2000,2100]
func ValidateDefault(period int) bool {
	return Validate(period, DefaultYearFrom, DefaultYearTo, LengthAny)
}

// ToTime converts a period to the first day of its month at midnight UTC.
// Year-only periods resolve to January 1st.
func ToTime(period int) (time.Time, error) {
	decoded, err := Decode(period)
	if err != nil {
		return time.Time{}, err
	}

	month := decoded.Month
	if decoded.IsYearOnly() {
		month = 1
	}
	return clockx.Date(decoded.Year, month, 1), nil
}

// Encode renders a time as a YYYYMM period
func Encode(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}

// EncodeYear renders a time as a YYYY period
func EncodeYear(t time.Time) int {
	return t.Year()
}

// AddMonths shifts a period by the given number of months and re-encodes it
// as YYYYMM. A zero period defaults to the clock's current month; a nil
// clock falls back to the system clock. Zero steps returns the resolved
// period unchanged.
func AddMonths(period, steps int, clock clockx.Clock) (int, error) {
	resolved, err := resolvePeriod(period, clock)
	if err != nil {
		return 0, err
	}
	if steps == 0 {
		return resolved, nil
	}

	start, err := ToTime(resolved)
	if err != nil {
		return 0, err
	}
	return Encode(start.AddDate(0, steps, 0)), nil
}

// SubMonths shifts a period backwards by the given number of months
func SubMonths(period, steps int, clock clockx.Clock) (int, error) {
	return AddMonths(period, -steps, clock)
}

// resolvePeriod substitutes the current month for a zero period and
// normalizes year-only periods to YYYYMM form
func resolvePeriod(period int, clock clockx.Clock) (int, error) {
	if period == 0 {
		if clock == nil {
			clock = clockx.SystemClock{}
		}
		return Encode(clock.Now()), nil
	}

	decoded, err := Decode(period)
	if err != nil {
		return 0, err
	}
	if decoded.IsYearOnly() {
		return decoded.Year*100 + 1, nil
	}
	return period, nil
}

// DaysInMonth returns the number of days in the period's month, accounting
// for leap years. Year-only periods report January.
func DaysInMonth(period int) (int, error) {
	start, err := ToTime(period)
	if err != nil {
		return 0, err
	}
	return clockx.DaysInMonth(start.Year(), int(start.Month())), nil
}

// LastDayOfMonth returns the period's last calendar day as YYYY-MM-DD
func LastDayOfMonth(period int) (string, error) {
	start, err := ToTime(period)
	if err != nil {
		return "", err
	}
	return clockx.FormatISODate(start.AddDate(0, 1, -1)), nil
}

// FormatMonthYear renders a period as "<MonthName> <of> <year>" using the
// given lexicon (the default Spanish lexicon when nil). Year-only periods
// render January by the codec caller convention.
func FormatMonthYear(period int, lex *i18n.Lexicon) (string, error) {
	decoded, err := Decode(period)
	if err != nil {
		return "", err
	}

	if lex == nil {
		lex = i18n.Default()
	}

	month := decoded.Month
	if decoded.IsYearOnly() {
		month = 1
	}

	name, err := lex.MonthName(month)
	if err != nil {
		return "", bizerror.Wrap(err, "cannot format period").
			WithCode(bizerror.CodeInvalidPeriod).
			WithOperation("periodx.FormatMonthYear")
	}

	return fmt.Sprintf("%s %s %d", name, lex.Of(), decoded.Year), nil
}
