package model

import "errors"

// FieldSpec is the per-attribute contract governing how a single named field
// is read, written, validated and converted. Specs are created once at type
// definition and shared read-only by every instance of the type.
//
// Custom specs embed *Field to inherit the base behaviour and override the
// operations they specialize, the way ObjectField, ListField, DictField and
// ProxyField do.
type FieldSpec interface {
	// Name returns the field's external name, used as the key in serialized
	// value trees. It defaults to the declaring attribute name and is bound
	// once while the field table is built.
	Name() string
	// Required reports whether the field must be able to provide a value.
	Required() bool
	// AllowNull reports whether nil is an acceptable value.
	AllowNull() bool
	// Default returns the field's tagged default.
	Default() Default
	// Validator returns the attached validation rule, or nil.
	Validator() Validator

	// Get returns the field's current value, materializing and memoizing the
	// default on first read. Reading an unset field with no default fails
	// with *ValueRequiredError.
	Get(inst *Instance) (any, error)
	// Set validates the value and, on success, stores it. State is never
	// mutated on a validation failure.
	Set(inst *Instance, value any) error
	// Clear removes the field's value from instance state. Required fields
	// cannot be cleared and fail with *ValueRequiredError.
	Clear(inst *Instance) error
	// HasValue reports whether the field is present in instance state.
	HasValue(inst *Instance) bool
	// CanProvideValue reports whether HasValue holds or a default exists.
	CanProvideValue(inst *Instance) bool
	// Validate checks the null policy first and then the attached validator.
	// Violations surface as *ValidationError.
	Validate(inst *Instance, value any) error
	// Serialize converts the field's current value into a value-tree node.
	Serialize(inst *Instance) (any, error)
	// Deserialize converts a value-tree node and stores the result.
	Deserialize(inst *Instance, raw any) error

	// bind attaches the declaring attribute name as the external name when no
	// explicit name was supplied. Binding happens once; an already bound name
	// is immutable.
	bind(attr string)
}

// Field is the base FieldSpec: a scalar attribute with identity transforms
// for serialize and deserialize.
type Field struct {
	name      string
	def       Default
	required  bool
	allowNull bool
	validator Validator
}

var _ FieldSpec = (*Field)(nil)

// FieldOption configures a field spec at construction time.
type FieldOption func(*Field)

// WithName overrides the external name, decoupling the serialized key from
// the declaring attribute name.
func WithName(name string) FieldOption {
	return func(f *Field) { f.name = name }
}

// Required marks the field as required.
func Required() FieldOption {
	return func(f *Field) { f.required = true }
}

// AllowNull permits nil values.
func AllowNull() FieldOption {
	return func(f *Field) { f.allowNull = true }
}

// WithDefault attaches a static default value.
func WithDefault(v any) FieldOption {
	return func(f *Field) { f.def = DefaultValue(v) }
}

// WithDefaultFactory attaches a zero-argument default value producer.
func WithDefaultFactory(fn Factory) FieldOption {
	return func(f *Field) { f.def = DefaultFactory(fn) }
}

// WithValidator attaches a validation rule.
func WithValidator(v Validator) FieldOption {
	return func(f *Field) { f.validator = v }
}

// NewField creates a scalar field spec.
func NewField(opts ...FieldOption) *Field {
	f := &Field{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) Name() string { return f.name }

func (f *Field) Required() bool { return f.required }

func (f *Field) AllowNull() bool { return f.allowNull }

func (f *Field) Default() Default { return f.def }

func (f *Field) Validator() Validator { return f.validator }

func (f *Field) bind(attr string) {
	if f.name == "" {
		f.name = attr
	}
}

// store writes into instance state bypassing validation. Specializations call
// it after running their own Validate.
func (f *Field) store(inst *Instance, value any) {
	inst.state[f.name] = value
}

func (f *Field) Get(inst *Instance) (any, error) {
	if v, ok := inst.state[f.name]; ok {
		return v, nil
	}
	if f.def.Provided() {
		v := f.def.materialize()
		inst.state[f.name] = v
		return v, nil
	}
	return nil, &ValueRequiredError{Model: inst.typ.name, Field: f.name}
}

func (f *Field) Set(inst *Instance, value any) error {
	if err := f.Validate(inst, value); err != nil {
		return err
	}
	f.store(inst, value)
	return nil
}

func (f *Field) Clear(inst *Instance) error {
	if f.required {
		return &ValueRequiredError{Model: inst.typ.name, Field: f.name}
	}
	delete(inst.state, f.name)
	return nil
}

func (f *Field) HasValue(inst *Instance) bool {
	_, ok := inst.state[f.name]
	return ok
}

func (f *Field) CanProvideValue(inst *Instance) bool {
	return f.HasValue(inst) || f.def.Provided()
}

func (f *Field) Validate(inst *Instance, value any) error {
	if value == nil && !f.allowNull {
		return &ValidationError{
			Model:  inst.typ.name,
			Field:  f.name,
			Value:  value,
			Reason: "null is not allowed",
		}
	}
	if f.validator == nil {
		return nil
	}
	if err := f.validator.Validate(inst, f, value); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return err
		}
		return &ValidationError{
			Model:  inst.typ.name,
			Field:  f.name,
			Value:  value,
			Reason: err.Error(),
		}
	}
	return nil
}

// Serialize is the identity transform for scalar fields.
func (f *Field) Serialize(inst *Instance) (any, error) {
	return f.Get(inst)
}

// Deserialize is the identity transform for scalar fields.
func (f *Field) Deserialize(inst *Instance, raw any) error {
	return f.Set(inst, raw)
}
