package model

import (
	"fmt"
	"log/slog"
)

type fieldEntry struct {
	attr string
	spec FieldSpec
}

// ModelType is an ordered, name-keyed table of field specs. It is built once
// at type-definition time and shared read-only for the type's lifetime.
type ModelType struct {
	name   string
	order  []fieldEntry
	byAttr map[string]FieldSpec
	byName map[string]FieldSpec
}

type typeConfig struct {
	bases    []*ModelType
	fields   []fieldEntry
	registry *Registry
	logger   *slog.Logger
}

// TypeOption configures a model type definition.
type TypeOption func(*typeConfig)

// WithBase declares base types whose fields are inherited, walked in the
// given order. A field declared on the type itself always overrides an
// inherited field of the same name.
func WithBase(bases ...*ModelType) TypeOption {
	return func(cfg *typeConfig) { cfg.bases = append(cfg.bases, bases...) }
}

// WithField declares a field under the given attribute name. Declaration
// order fixes the table order for validation and serialization.
func WithField(attr string, spec FieldSpec) TypeOption {
	return func(cfg *typeConfig) {
		cfg.fields = append(cfg.fields, fieldEntry{attr: attr, spec: spec})
	}
}

// WithRegistry registers the built type so symbolic references can resolve
// against it.
func WithRegistry(reg *Registry) TypeOption {
	return func(cfg *typeConfig) { cfg.registry = reg }
}

// WithLogger attaches a structured logger; the builder emits debug events for
// table construction. Logging is off by default.
func WithLogger(logger *slog.Logger) TypeOption {
	return func(cfg *typeConfig) { cfg.logger = logger }
}

// NewType builds the field table for a model type. Inherited fields are
// merged base-by-base in declaration order; two unrelated bases contributing
// different specs for the same attribute, absent an own overriding
// declaration, fail with *DuplicateFieldDefinitionError. The same is true for
// two own declarations of one attribute, and for two fields sharing an
// external name. A static nil default on a field that does not allow null
// fails with ErrNilDefault.
func NewType(name string, opts ...TypeOption) (*ModelType, error) {
	if name == "" {
		return nil, fmt.Errorf("model: type name is required")
	}
	cfg := typeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	own := make(map[string]FieldSpec, len(cfg.fields))
	for _, entry := range cfg.fields {
		if entry.spec == nil {
			return nil, fmt.Errorf("model %s: field %q has a nil spec", name, entry.attr)
		}
		if _, dup := own[entry.attr]; dup {
			return nil, &DuplicateFieldDefinitionError{Model: name, Field: entry.attr}
		}
		own[entry.attr] = entry.spec
	}

	var order []fieldEntry
	inherited := make(map[string]FieldSpec)
	for _, base := range cfg.bases {
		if base == nil {
			return nil, fmt.Errorf("model %s: nil base type", name)
		}
		for _, entry := range base.order {
			if _, overridden := own[entry.attr]; overridden {
				continue
			}
			if prev, seen := inherited[entry.attr]; seen {
				if prev != entry.spec {
					return nil, &DuplicateFieldDefinitionError{Model: name, Field: entry.attr}
				}
				continue
			}
			inherited[entry.attr] = entry.spec
			order = append(order, entry)
		}
	}
	order = append(order, cfg.fields...)

	t := &ModelType{
		name:   name,
		order:  order,
		byAttr: make(map[string]FieldSpec, len(order)),
		byName: make(map[string]FieldSpec, len(order)),
	}
	for _, entry := range order {
		spec := entry.spec
		spec.bind(entry.attr)
		if spec.Default().isNilStatic() && !spec.AllowNull() {
			return nil, fmt.Errorf("model %s: field %q: %w", name, entry.attr, ErrNilDefault)
		}
		if _, clash := t.byName[spec.Name()]; clash {
			return nil, &DuplicateFieldDefinitionError{Model: name, Field: spec.Name()}
		}
		t.byAttr[entry.attr] = spec
		t.byName[spec.Name()] = spec
	}

	if cfg.registry != nil {
		if err := cfg.registry.Register(t); err != nil {
			return nil, err
		}
	}
	if cfg.logger != nil {
		cfg.logger.Debug("model type built",
			"model", name,
			"fields", len(t.order),
			"bases", len(cfg.bases))
	}
	return t, nil
}

// MustNewType is NewType that panics on definition errors. Intended for
// package-level type declarations where a broken definition is fatal anyway.
func MustNewType(name string, opts ...TypeOption) *ModelType {
	t, err := NewType(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the type name.
func (t *ModelType) Name() string { return t.name }

// Len returns the number of fields in the table.
func (t *ModelType) Len() int { return len(t.order) }

// Attrs returns the attribute names in table order.
func (t *ModelType) Attrs() []string {
	attrs := make([]string, len(t.order))
	for i, entry := range t.order {
		attrs[i] = entry.attr
	}
	return attrs
}

// Field returns the spec declared under the given attribute name.
func (t *ModelType) Field(attr string) (FieldSpec, bool) {
	spec, ok := t.byAttr[attr]
	return spec, ok
}

// FieldByName returns the spec whose external name matches, the lookup used
// when deserializing value trees.
func (t *ModelType) FieldByName(name string) (FieldSpec, bool) {
	spec, ok := t.byName[name]
	return spec, ok
}

// Empty creates a fresh instance with no state and no validation. Callers
// populate it incrementally via Set or Deserialize.
func (t *ModelType) Empty() *Instance {
	return &Instance{typ: t, state: make(map[string]any)}
}

// New constructs an instance from attribute/value pairs. Unknown attribute
// names are rejected with *UnknownFieldError, each value routes through its
// field's Set, and the whole object is validated afterwards: construction
// fails with *ValueRequiredError when a required field was never provided and
// has no default. A failed construction returns no instance.
func (t *ModelType) New(values map[string]any) (*Instance, error) {
	for attr := range values {
		if _, ok := t.byAttr[attr]; !ok {
			return nil, &UnknownFieldError{Model: t.name, Field: attr}
		}
	}
	inst := t.Empty()
	for _, entry := range t.order {
		value, ok := values[entry.attr]
		if !ok {
			continue
		}
		if err := entry.spec.Set(inst, value); err != nil {
			return nil, err
		}
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}
