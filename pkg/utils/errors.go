package utils

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across repositories and services. Handlers map
// these to HTTP responses; anything unwrapped falls through as a generic
// internal error.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrUpstreamUnavailable = errors.New("upstream availability provider unavailable")
)

// ValidationError carries per-field messages for malformed input. It is
// terminal: callers should not retry.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
