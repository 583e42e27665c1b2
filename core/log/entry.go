// File: entry.go
// Title: Log Entry Definition
// Description: Defines the Entry type holding a single log record and the
//              field helpers used to attach structured data to messages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Core log information
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Context information
	CorrelationID string

	// Custom fields
	Fields Fields

	// Error information
	Error error

	// Performance metrics
	Duration time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field for logging
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field for logging
func String(key, value string) Fields {
	return Fields{key: value}
}

// NewEntry creates a new log entry with the current timestamp
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields merges the given field maps into the entry
func (e *Entry) WithFields(fieldMaps ...Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	for _, fields := range fieldMaps {
		for k, v := range fields {
			if k == "error" {
				if err, ok := v.(error); ok {
					e.Error = err
					continue
				}
			}
			e.Fields[k] = v
		}
	}
	return e
}
