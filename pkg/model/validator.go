package model

// Validator is a composable rule checking a candidate value's acceptability
// for a field. Implementations return nil on pass and an error carrying a
// human-readable reason on violation; the engine wraps violations into
// *ValidationError before surfacing them.
//
// Rules live in pkg/validation; the interface is declared here so field specs
// can hold validators without an import cycle.
type Validator interface {
	Validate(inst *Instance, field FieldSpec, value any) error
}

// ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(inst *Instance, field FieldSpec, value any) error

// Validate calls the underlying function.
func (fn ValidatorFunc) Validate(inst *Instance, field FieldSpec, value any) error {
	return fn(inst, field, value)
}
