// Package objectmodel is the convenience facade for the declarative
// object-modeling engine in pkg/model: declare typed, validated fields on a
// model type, construct instances with lazy defaults, and convert them to and
// from JSON-compatible value trees. Validators live in pkg/validation, text
// encoding in pkg/codec, OpenAPI export in pkg/schema and default factories
// in pkg/defaults.
package objectmodel

import (
	"log/slog"

	"github.com/goliatone/go-objectmodel/pkg/model"
)

// Core types re-exported from pkg/model.
type (
	Field       = model.Field
	FieldSpec   = model.FieldSpec
	FieldOption = model.FieldOption
	ObjectField = model.ObjectField
	ListField   = model.ListField
	DictField   = model.DictField
	ProxyField  = model.ProxyField
	ModelType   = model.ModelType
	TypeOption  = model.TypeOption
	Instance    = model.Instance
	Registry    = model.Registry
	TypeRef     = model.TypeRef
	Default     = model.Default
	Factory     = model.Factory
	Validator   = model.Validator
)

// Error types re-exported for errors.As matching at the facade level.
type (
	ValidationError               = model.ValidationError
	ValueRequiredError            = model.ValueRequiredError
	DuplicateFieldDefinitionError = model.DuplicateFieldDefinitionError
	UnknownFieldError             = model.UnknownFieldError
	UnresolvedReferenceError      = model.UnresolvedReferenceError
)

// NewType builds a model type's immutable field table.
func NewType(name string, opts ...TypeOption) (*ModelType, error) {
	return model.NewType(name, opts...)
}

// MustNewType is NewType that panics on definition errors.
func MustNewType(name string, opts ...TypeOption) *ModelType {
	return model.MustNewType(name, opts...)
}

// NewField creates a scalar field spec.
func NewField(opts ...FieldOption) *Field {
	return model.NewField(opts...)
}

// NewObjectField creates a nested single-object field.
func NewObjectField(ref TypeRef, opts ...FieldOption) *ObjectField {
	return model.NewObjectField(ref, opts...)
}

// NewListField creates an ordered nested-sequence field.
func NewListField(ref TypeRef, opts ...FieldOption) *ListField {
	return model.NewListField(ref, opts...)
}

// NewDictField creates a keyed nested-mapping field.
func NewDictField(ref TypeRef, opts ...FieldOption) *DictField {
	return model.NewDictField(ref, opts...)
}

// NewProxyField creates a read-only alias for another attribute.
func NewProxyField(attr string, opts ...FieldOption) *ProxyField {
	return model.NewProxyField(attr, opts...)
}

// NewRegistry creates an empty type registry for symbolic references.
func NewRegistry() *Registry {
	return model.NewRegistry()
}

// TypeOf references a built type directly.
func TypeOf(t *ModelType) TypeRef { return model.TypeOf(t) }

// TypeNamed references a type symbolically, resolved lazily against reg.
func TypeNamed(name string, reg *Registry) TypeRef { return model.TypeNamed(name, reg) }

// WithName overrides a field's external name.
func WithName(name string) FieldOption { return model.WithName(name) }

// Required marks a field as required.
func Required() FieldOption { return model.Required() }

// AllowNull permits nil values on a field.
func AllowNull() FieldOption { return model.AllowNull() }

// WithDefault attaches a static default value.
func WithDefault(v any) FieldOption { return model.WithDefault(v) }

// WithDefaultFactory attaches a zero-argument default value producer.
func WithDefaultFactory(fn Factory) FieldOption { return model.WithDefaultFactory(fn) }

// WithValidator attaches a validation rule.
func WithValidator(v Validator) FieldOption { return model.WithValidator(v) }

// WithBase declares base types whose fields are inherited.
func WithBase(bases ...*ModelType) TypeOption { return model.WithBase(bases...) }

// WithField declares a field under the given attribute name.
func WithField(attr string, spec FieldSpec) TypeOption { return model.WithField(attr, spec) }

// WithRegistry registers the built type for symbolic reference resolution.
func WithRegistry(reg *Registry) TypeOption { return model.WithRegistry(reg) }

// WithLogger attaches a structured logger emitting debug events while the
// field table is built.
func WithLogger(logger *slog.Logger) TypeOption { return model.WithLogger(logger) }
