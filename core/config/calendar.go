// File: calendar.go
// Title: Calendar Configuration View
// Description: Implements the typed calendar section of the configuration:
//              accepted year range for period validation and holiday lists,
//              inline or loaded from referenced holiday files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/utils/clockx"
	"github.com/msto63/bizcore/utils/periodx"
	"github.com/msto63/bizcore/utils/workdayx"
)

// CalendarConfig is the typed view of the [calendar] section
type CalendarConfig struct {
	YearMin      int      // Lower bound for accepted period years
	YearMax      int      // Upper bound for accepted period years
	Holidays     []string // Inline holiday dates, ISO format
	HolidayFiles []string // Additional files holding a "holidays" list
}

// holidayFile is the schema of a referenced holiday file
type holidayFile struct {
	Holidays []string `toml:"holidays" yaml:"holidays"`
}

// Calendar returns the calendar section with year bounds defaulted to the
// period validation range
func (c *Config) Calendar() CalendarConfig {
	return CalendarConfig{
		YearMin:      c.GetInt("calendar.year_min", periodx.DefaultYearFrom),
		YearMax:      c.GetInt("calendar.year_max", periodx.DefaultYearTo),
		Holidays:     c.GetStringSlice("calendar.holidays"),
		HolidayFiles: c.GetStringSlice("calendar.holiday_files"),
	}
}

// HolidaySet builds the working day holiday set from the inline holiday
// list and every referenced holiday file. Each entry must be an ISO date;
// a malformed entry fails the whole load.
func (c *Config) HolidaySet() (workdayx.HolidaySet, error) {
	cal := c.Calendar()

	dates := make([]string, 0, len(cal.Holidays))
	dates = append(dates, cal.Holidays...)

	for _, path := range cal.HolidayFiles {
		fileDates, err := readHolidayFile(path)
		if err != nil {
			return nil, err
		}
		dates = append(dates, fileDates...)
	}

	for _, date := range dates {
		if _, err := clockx.ParseISODate(date); err != nil {
			return nil, bizerror.Wrapf(err, "invalid holiday date %q", date).
				WithCode(bizerror.CodeInvalidDate).
				WithOperation("config.HolidaySet").
				WithDetail("date", date)
		}
	}

	return workdayx.NewHolidaySet(dates), nil
}

// readHolidayFile loads the "holidays" list from a TOML or YAML file
func readHolidayFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, bizerror.Wrap(err, "failed to read holiday file").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.readHolidayFile").
			WithDetail("filePath", path)
	}

	var file holidayFile
	switch detectFormat(path) {
	case FormatYAML:
		err = yaml.Unmarshal(content, &file)
	default:
		err = toml.Unmarshal(content, &file)
	}
	if err != nil {
		return nil, bizerror.Wrap(err, "failed to parse holiday file").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.readHolidayFile").
			WithDetail("filePath", path)
	}

	return file.Holidays, nil
}
