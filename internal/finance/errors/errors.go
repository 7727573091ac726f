package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound covers both a missing record and a record owned by another
// user, so callers cannot probe for existence.
var ErrNotFound = errors.New("record not found")

// ValidationErrors collects field-level messages. Validation is
// all-or-nothing: a write with any entry here persists nothing.
type ValidationErrors struct {
	Fields map[string][]string
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string][]string)}
}

func NewFieldError(field, msg string) *ValidationErrors {
	ve := NewValidationErrors()
	ve.Add(field, msg)
	return ve
}

func (ve *ValidationErrors) Add(field, msg string) {
	ve.Fields[field] = append(ve.Fields[field], msg)
}

func (ve *ValidationErrors) Empty() bool {
	return len(ve.Fields) == 0
}

// ErrOrNil lets services end a validation pass with a single return.
func (ve *ValidationErrors) ErrOrNil() error {
	if ve.Empty() {
		return nil
	}
	return ve
}

func (ve *ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve.Fields))
	for field := range ve.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(ve.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func IsValidationError(err error) bool {
	var validationErrors *ValidationErrors
	return errors.As(err, &validationErrors)
}

// FieldMessages extracts the per-field messages for the response payload,
// nil when err is not a validation error.
func FieldMessages(err error) map[string][]string {
	var validationErrors *ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrors.Fields
	}
	return nil
}

// ConflictError is a storage-level constraint rejection re-expressed as a
// user-facing message, e.g. deleting a category that transactions reference.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}
