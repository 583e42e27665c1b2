// File: stringx.go
// Title: Core String Utilities
// Description: Implements the string utility functions used across the
//              bizcore library, including emptiness checks, padding, and
//              truncation helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty checks if a string is empty
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsNotBlank checks if a string contains non-whitespace characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first string that is not blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// PadLeft pads a string on the left to the given width
func PadLeft(s string, width int, pad rune) string {
	length := utf8.RuneCountInString(s)
	if length >= width {
		return s
	}
	return strings.Repeat(string(pad), width-length) + s
}

// PadRight pads a string on the right to the given width
func PadRight(s string, width int, pad rune) string {
	length := utf8.RuneCountInString(s)
	if length >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-length)
}

// Truncate shortens a string to maxLen runes, appending ellipsis when cut
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(ellipsis)[:maxLen])
	}

	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}
