package model

// ObjectField holds a single nested model instance, or nil when the field
// allows null. Serialization and validation recurse into the nested instance.
type ObjectField struct {
	*Field
	ref TypeRef
}

var _ FieldSpec = (*ObjectField)(nil)

// NewObjectField creates a nested-object field for the referenced type.
func NewObjectField(ref TypeRef, opts ...FieldOption) *ObjectField {
	return &ObjectField{Field: NewField(opts...), ref: ref}
}

// TypeRef returns the nested type reference.
func (f *ObjectField) TypeRef() TypeRef { return f.ref }

func (f *ObjectField) Set(inst *Instance, value any) error {
	if err := f.Validate(inst, value); err != nil {
		return err
	}
	f.store(inst, value)
	return nil
}

// Validate runs the base null/validator checks and then, for non-nil values,
// requires a model instance and recursively validates it. The first inner
// failure propagates as the outer failure.
func (f *ObjectField) Validate(inst *Instance, value any) error {
	if err := f.Field.Validate(inst, value); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	nested, ok := value.(*Instance)
	if !ok {
		return &ValidationError{
			Model:  inst.typ.name,
			Field:  f.Name(),
			Value:  value,
			Reason: "expected a model instance",
		}
	}
	return nested.Validate()
}

func (f *ObjectField) Serialize(inst *Instance) (any, error) {
	value, err := f.Get(inst)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	nested, ok := value.(*Instance)
	if !ok {
		return nil, &ValidationError{
			Model:  inst.typ.name,
			Field:  f.Name(),
			Value:  value,
			Reason: "expected a model instance",
		}
	}
	return nested.Serialize()
}

// Deserialize constructs a fresh instance of the nested type, deserializes
// the raw sub-tree into it and stores the result. A nil sub-tree routes
// through Set so the null policy applies.
func (f *ObjectField) Deserialize(inst *Instance, raw any) error {
	if raw == nil {
		return f.Set(inst, nil)
	}
	tree, ok := raw.(map[string]any)
	if !ok {
		return &ValidationError{
			Model:  inst.typ.name,
			Field:  f.Name(),
			Value:  raw,
			Reason: "expected a mapping",
		}
	}
	typ, err := f.ref.Resolve()
	if err != nil {
		return err
	}
	nested := typ.Empty()
	if err := nested.Deserialize(tree); err != nil {
		return err
	}
	return f.Set(inst, nested)
}
