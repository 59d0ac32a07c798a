package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Custom error types for the portfolio API

// ErrStorageUnavailable is returned when the persistence layer cannot be
// reached. It is deliberately distinct from a not-found result.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrNotificationFailed is returned by the mail path when a notification
// could not be delivered. It is always swallowed at the boundary and
// never surfaced to the HTTP caller.
var ErrNotificationFailed = errors.New("notification delivery failed")

// NotFoundError is returned when an operation targets a record that does
// not exist.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// ValidationError carries a field -> message mapping for malformed or
// missing client input. Validation runs before any mutation is attempted.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready to collect
// field errors.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records an error message for a field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
