// File: i18n.go
// Title: Calendar Lexicon Implementation
// Description: Implements the Lexicon type holding localized month names,
//              relative-time unit names, plural forms, and literals used by
//              the calendar formatters. Ships with a fixed Spanish lexicon
//              embedded in the binary; alternate locales can be loaded from
//              TOML or YAML files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with embedded Spanish lexicon

package i18n

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/utils/stringx"
)

//go:embed locales/es.toml
var embeddedLocales embed.FS

// Unit identifiers understood by UnitName
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitWeek   = "week"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"
)

// Literals holds the fixed phrases of a lexicon
type Literals struct {
	Ago     string `toml:"ago" yaml:"ago"`
	JustNow string `toml:"just_now" yaml:"just_now"`
	Of      string `toml:"of" yaml:"of"`
}

// Lexicon holds localized calendar vocabulary
type Lexicon struct {
	Months   []string          `toml:"months" yaml:"months"`
	Units    map[string]string `toml:"units" yaml:"units"`
	Plurals  map[string]string `toml:"plurals" yaml:"plurals"`
	Literals Literals          `toml:"literals" yaml:"literals"`
}

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
)

// Default returns the embedded Spanish lexicon
func Default() *Lexicon {
	defaultOnce.Do(func() {
		data, err := embeddedLocales.ReadFile("locales/es.toml")
		if err != nil {
			// The embedded locale is part of the binary; failing to read
			// it is a build defect, not a runtime condition.
			panic("i18n: embedded locale missing: " + err.Error())
		}

		lex := &Lexicon{}
		if err := toml.Unmarshal(data, lex); err != nil {
			panic("i18n: embedded locale malformed: " + err.Error())
		}
		if err := lex.validate(); err != nil {
			panic("i18n: embedded locale incomplete: " + err.Error())
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

// LoadFile loads a lexicon from a TOML or YAML file, detecting the format
// from the file extension
func LoadFile(path string) (*Lexicon, error) {
	if stringx.IsBlank(path) {
		return nil, bizerror.New("locale path cannot be empty").
			WithCode(bizerror.CodeRequiredField).
			WithOperation("i18n.LoadFile")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bizerror.Wrap(err, "cannot read locale file").
			WithCode(bizerror.CodeConfigError).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}

	lex := &Lexicon{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, lex)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, lex)
	default:
		return nil, bizerror.New("unsupported locale file format").
			WithCode(bizerror.CodeInvalidFormat).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, bizerror.Wrap(err, "cannot parse locale file").
			WithCode(bizerror.CodeInvalidConfig).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}

	if err := lex.validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

// validate checks that the lexicon carries everything the formatters need
func (l *Lexicon) validate() error {
	if len(l.Months) != 12 {
		return bizerror.Newf("lexicon must define 12 month names, found %d", len(l.Months)).
			WithCode(bizerror.CodeInvalidConfig).
			WithOperation("i18n.validate")
	}

	required := []string{UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}
	for _, unit := range required {
		if stringx.IsBlank(l.Units[unit]) {
			return bizerror.Newf("lexicon is missing unit name %q", unit).
				WithCode(bizerror.CodeInvalidConfig).
				WithOperation("i18n.validate")
		}
	}

	if stringx.IsBlank(l.Literals.Ago) || stringx.IsBlank(l.Literals.JustNow) || stringx.IsBlank(l.Literals.Of) {
		return bizerror.New("lexicon is missing literals").
			WithCode(bizerror.CodeInvalidConfig).
			WithOperation("i18n.validate")
	}

	return nil
}

// MonthName returns the localized name for a month in [1,12]
func (l *Lexicon) MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", bizerror.Newf("month %d outside [1,12]", month).
			WithCode(bizerror.CodeValueOutOfRange).
			WithOperation("i18n.MonthName").
			WithDetail("month", month)
	}
	return l.Months[month-1], nil
}

// UnitName returns the localized unit name pluralized for the given count.
// Irregular plurals come from the Plurals table; regular ones append "s".
func (l *Lexicon) UnitName(unit string, count int) string {
	name := l.Units[unit]
	if name == "" {
		return unit
	}
	if count <= 1 {
		return name
	}
	if plural, ok := l.Plurals[name]; ok {
		return plural
	}
	return name + "s"
}

// Ago returns the "ago" prefix literal
func (l *Lexicon) Ago() string {
	return l.Literals.Ago
}

// JustNow returns the "just now" literal
func (l *Lexicon) JustNow() string {
	return l.Literals.JustNow
}

// Of returns the month/year connector literal
func (l *Lexicon) Of() string {
	return l.Literals.Of
}
