// File: error_test.go
// Title: Core Error Tests
// Description: Test suite for the structured Error type including wrapping,
//              code propagation, severity derivation, and chain handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something went wrong")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWithCode(t *testing.T) {
	testCases := []struct {
		name         string
		code         Code
		wantSeverity Severity
	}{
		{"invalid period", CodeInvalidPeriod, SeverityMedium},
		{"invalid date", CodeInvalidDate, SeverityMedium},
		{"invalid row", CodeInvalidRow, SeverityMedium},
		{"invalid input", CodeInvalidInput, SeverityLow},
		{"config error", CodeConfigError, SeverityHigh},
		{"internal", CodeInternal, SeverityCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New("test").WithCode(tc.code)

			if err.Code() != tc.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tc.code)
			}
			if err.Severity() != tc.wantSeverity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tc.wantSeverity)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := New("decode failed").WithCode(CodeInvalidPeriod)
	wrapped := Wrap(base, "period arithmetic failed")

	if wrapped.Code() != CodeInvalidPeriod {
		t.Errorf("wrapped error should inherit code, got %v", wrapped.Code())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the wrapped error")
	}
	if !strings.Contains(wrapped.Error(), "decode failed") {
		t.Errorf("Error() should include the cause, got %q", wrapped.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestWrapStandardError(t *testing.T) {
	stdErr := errors.New("io failure")
	wrapped := Wrap(stdErr, "loading holidays")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeUnknown)
	}
	if wrapped.RootCause() != stdErr {
		t.Error("RootCause() should return the original standard error")
	}
}

func TestChainTruncation(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	e, ok := err.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}
	if depth := chainDepth(e); depth > MaxErrorChainDepth+1 {
		t.Errorf("chain depth %d exceeds limit", depth)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("bad month").WithCode(CodeInvalidPeriod)

	if !HasCode(err, CodeInvalidPeriod) {
		t.Error("HasCode should report CodeInvalidPeriod")
	}
	if HasCode(err, CodeInvalidDate) {
		t.Error("HasCode should not report CodeInvalidDate")
	}
	if GetCode(err) != CodeInvalidPeriod {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeInvalidPeriod)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on plain error should return CodeUnknown")
	}
}

func TestDetails(t *testing.T) {
	err := New("row mismatch").
		WithCode(CodeInvalidRow).
		WithDetail("row", 3).
		WithOperation("tablex.TableToAssociative")

	details := err.Details()
	if details["row"] != 3 {
		t.Errorf("details[row] = %v, want 3", details["row"])
	}
	if err.Operation() != "tablex.TableToAssociative" {
		t.Errorf("Operation() = %q", err.Operation())
	}

	// Details returns a copy, mutation must not leak back
	details["row"] = 99
	if err.Details()["row"] != 3 {
		t.Error("Details() should return a copy")
	}
}

func TestStringRepresentation(t *testing.T) {
	err := New("bad period").WithCode(CodeInvalidPeriod).WithOperation("periodx.Decode")
	s := err.String()

	for _, want := range []string{"INVALID_PERIOD", "bad period", "periodx.Decode"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestSeverity(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low/medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high/critical severities should alert")
	}
	if SeverityCritical.String() != "critical" {
		t.Errorf("String() = %q, want critical", SeverityCritical.String())
	}
}

func TestCodeIsValid(t *testing.T) {
	if !CodeInvalidPeriod.IsValid() {
		t.Error("CodeInvalidPeriod should be valid")
	}
	if Code("MADE_UP").IsValid() {
		t.Error("unknown code should not be valid")
	}
}
