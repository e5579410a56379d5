// Package schema exports model field tables as OpenAPI schemas. Each field
// becomes a property keyed by its external name; required and nullable
// policies, static defaults and describable validator constraints map onto
// the corresponding schema keywords. Nested object, list and dict fields
// recurse; self-referential and unresolved symbolic types are emitted as
// component references by type name.
//
// Enum options are exported in their string form since rule descriptors carry
// string parameters.
package schema
