// File: i18n_test.go
// Title: Lexicon Tests
// Description: Test suite for the embedded Spanish lexicon and the locale
//              file loader.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	bizerror "github.com/msto63/bizcore/core/error"
)

func TestDefaultLexicon(t *testing.T) {
	lex := Default()

	testCases := []struct {
		month int
		want  string
	}{
		{1, "Enero"},
		{2, "Febrero"},
		{9, "Septiembre"},
		{12, "Diciembre"},
	}

	for _, tc := range testCases {
		got, err := lex.MonthName(tc.month)
		if err != nil {
			t.Fatalf("MonthName(%d) unexpected error: %v", tc.month, err)
		}
		if got != tc.want {
			t.Errorf("MonthName(%d) = %q, want %q", tc.month, got, tc.want)
		}
	}
}

func TestMonthNameOutOfRange(t *testing.T) {
	lex := Default()

	for _, month := range []int{0, 13, -1} {
		_, err := lex.MonthName(month)
		if err == nil {
			t.Errorf("MonthName(%d) should fail", month)
			continue
		}
		if bizerror.GetCode(err) != bizerror.CodeValueOutOfRange {
			t.Errorf("MonthName(%d) code = %v, want VALUE_OUT_OF_RANGE", month, bizerror.GetCode(err))
		}
	}
}

func TestUnitNamePluralization(t *testing.T) {
	lex := Default()

	testCases := []struct {
		name  string
		unit  string
		count int
		want  string
	}{
		{"singular year", UnitYear, 1, "año"},
		{"plural year", UnitYear, 2, "años"},
		{"singular month", UnitMonth, 1, "mes"},
		{"irregular plural month", UnitMonth, 5, "meses"},
		{"singular day", UnitDay, 1, "día"},
		{"plural day", UnitDay, 3, "días"},
		{"plural minute", UnitMinute, 15, "minutos"},
		{"zero keeps singular", UnitHour, 0, "hora"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lex.UnitName(tc.unit, tc.count); got != tc.want {
				t.Errorf("UnitName(%q, %d) = %q, want %q", tc.unit, tc.count, got, tc.want)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	lex := Default()

	if lex.Ago() != "hace" {
		t.Errorf("Ago() = %q, want hace", lex.Ago())
	}
	if lex.JustNow() != "recién" {
		t.Errorf("JustNow() = %q, want recién", lex.JustNow())
	}
	if lex.Of() != "de" {
		t.Errorf("Of() = %q, want de", lex.Of())
	}
}

func TestLoadFileYAML(t *testing.T) {
	content := `
months: [Januar, Februar, März, April, Mai, Juni, Juli, August, September, Oktober, November, Dezember]
units:
  year: Jahr
  month: Monat
  week: Woche
  day: Tag
  hour: Stunde
  minute: Minute
  second: Sekunde
plurals:
  Monat: Monate
literals:
  ago: vor
  just_now: gerade eben
  of: ""
`
	// An empty "of" must be rejected: every literal is required
	dir := t.TempDir()
	path := filepath.Join(dir, "de.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile should reject a lexicon with blank literals")
	}
}

func TestLoadFileErrors(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		wantCode bizerror.Code
	}{
		{"blank path", "  ", bizerror.CodeRequiredField},
		{"missing file", "/nonexistent/locale.toml", bizerror.CodeConfigError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if bizerror.GetCode(err) != tc.wantCode {
				t.Errorf("code = %v, want %v", bizerror.GetCode(err), tc.wantCode)
			}
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "locale.json")
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		if bizerror.GetCode(err) != bizerror.CodeInvalidFormat {
			t.Errorf("code = %v, want INVALID_FORMAT", bizerror.GetCode(err))
		}
	})

	t.Run("incomplete months", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "short.toml")
		if err := os.WriteFile(path, []byte(`months = ["Enero"]`), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		if bizerror.GetCode(err) != bizerror.CodeInvalidConfig {
			t.Errorf("code = %v, want INVALID_CONFIG", bizerror.GetCode(err))
		}
	})
}
