package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDefault reports a static nil default on a field that does not
	// allow null values. Raised while building the field table, never at
	// instance construction.
	ErrNilDefault = errors.New("model: nil default requires allow-null")

	// ErrReadOnlyField reports a write to a computed field such as a proxy.
	ErrReadOnlyField = errors.New("model: field is read-only")
)

// ValidationError reports a value that violates a field's null policy or an
// attached validator rule. It carries the field identity, the offending value
// and a human-readable reason.
type ValidationError struct {
	Model  string
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid value %v for field %q of %s: %s",
		e.Value, e.Field, e.Model, e.Reason)
}

// ValueRequiredError reports a required field that was read, validated,
// serialized or cleared without ever being set and without a usable default.
type ValueRequiredError struct {
	Model string
	Field string
}

func (e *ValueRequiredError) Error() string {
	return fmt.Sprintf("model: required field %q of %s is not set", e.Field, e.Model)
}

// DuplicateFieldDefinitionError reports conflicting field specs for the same
// name discovered while the field table is built.
type DuplicateFieldDefinitionError struct {
	Model string
	Field string
}

func (e *DuplicateFieldDefinitionError) Error() string {
	return fmt.Sprintf("model: duplicate definition for field %q of %s", e.Field, e.Model)
}

// UnknownFieldError reports a construction argument that does not name a
// field in the model's table. Deserialization of unknown keys is lenient and
// never produces this error.
type UnknownFieldError struct {
	Model string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("model: unknown field %q for %s", e.Field, e.Model)
}

// UnresolvedReferenceError reports a symbolic type reference that could not
// be resolved against its registry.
type UnresolvedReferenceError struct {
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("model: type reference %q cannot be resolved", e.Name)
}
