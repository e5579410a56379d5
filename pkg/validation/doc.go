// Package validation provides the composable rule library for field specs:
// type membership, emptiness and length checks, numeric policies, set
// membership, per-item application across sequences, and a short-circuit
// chaining combinator. Rules implement model.Validator and return errors
// carrying a human-readable reason; the engine wraps violations into
// *model.ValidationError.
//
// Rules corresponding to canonical schema constraints also implement
// Describer so pkg/schema can surface them as OpenAPI keywords.
package validation
