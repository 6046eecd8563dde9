package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrWrongCredentials is returned by authentication when the email is
	// unknown, the password does not match or the account is deactivated.
	// The three cases are indistinguishable on purpose.
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrEnvironmentNotEmpty protects environments that still hold items
	// from deletion.
	ErrEnvironmentNotEmpty = errors.New("environment still holds items")

	// ErrItemTypeInUse protects item types still referenced by items from
	// deletion.
	ErrItemTypeInUse = errors.New("item type still referenced by items")

	// ErrSameEnvironment is returned when a movement targets the environment
	// the item already occupies.
	ErrSameEnvironment = errors.New("item is already in the target environment")

	// ErrItemHasMovements protects items that appear in movement history from
	// deletion. Movements are append-only, so the reference never goes away.
	ErrItemHasMovements = errors.New("item appears in movement history")

	// ErrEnvironmentInHistory protects environments that appear in movement
	// history from deletion, even after every item has left them.
	ErrEnvironmentInHistory = errors.New("environment appears in movement history")
)

// Not-found sentinels, one per entity. Transport maps all of them onto 404;
// keeping them distinct lets services report which reference was broken.
var (
	ErrUserNotFound        = errors.New("user was not found")
	ErrEnvironmentNotFound = errors.New("environment was not found")
	ErrItemNotFound        = errors.New("item was not found")
	ErrItemTypeNotFound    = errors.New("item type was not found")
	ErrTagNotFound         = errors.New("item type tag was not found")
)

// ValidationError reports one message per rejected input field, keyed by the
// field's wire name. Transport serializes the map verbatim as the body of an
// unprocessable-entity response.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError over an empty field map.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = message
	return e
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface with a deterministic field order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
