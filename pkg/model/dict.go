package model

// MapFactory constructs the mapping a DictField deserializes into, letting
// callers substitute their own map implementation source.
type MapFactory func() map[string]*Instance

// DictField holds a key-to-nested-instance mapping. Keys pass through
// unmodified in both directions; they are not modeled or validated.
type DictField struct {
	*Field
	ref     TypeRef
	factory MapFactory
}

var _ FieldSpec = (*DictField)(nil)

// NewDictField creates a keyed nested-mapping field for the referenced item
// type, using the standard map constructor.
func NewDictField(ref TypeRef, opts ...FieldOption) *DictField {
	return NewDictFieldWithFactory(ref, nil, opts...)
}

// NewDictFieldWithFactory creates a keyed nested-mapping field with a custom
// map constructor used on deserialize.
func NewDictFieldWithFactory(ref TypeRef, factory MapFactory, opts ...FieldOption) *DictField {
	if factory == nil {
		factory = func() map[string]*Instance { return make(map[string]*Instance) }
	}
	return &DictField{Field: NewField(opts...), ref: ref, factory: factory}
}

// TypeRef returns the item type reference.
func (f *DictField) TypeRef() TypeRef { return f.ref }

// instanceMap coerces a stored value to the nested-instance mapping the
// collection operates on. Both map[string]*Instance and map[string]any of
// instances are accepted.
func (f *DictField) instanceMap(inst *Instance, value any) (map[string]*Instance, error) {
	switch items := value.(type) {
	case map[string]*Instance:
		return items, nil
	case map[string]any:
		out := make(map[string]*Instance, len(items))
		for key, item := range items {
			nested, ok := item.(*Instance)
			if !ok {
				return nil, &ValidationError{
					Model:  inst.typ.name,
					Field:  f.Name(),
					Value:  item,
					Reason: "mapping value is not a model instance",
				}
			}
			out[key] = nested
		}
		return out, nil
	default:
		return nil, &ValidationError{
			Model:  inst.typ.name,
			Field:  f.Name(),
			Value:  value,
			Reason: "expected a mapping of model instances",
		}
	}
}

func (f *DictField) Set(inst *Instance, value any) error {
	if err := f.Validate(inst, value); err != nil {
		return err
	}
	f.store(inst, value)
	return nil
}

// Validate runs the base checks, requires a mapping and recursively validates
// every contained instance.
func (f *DictField) Validate(inst *Instance, value any) error {
	if err := f.Field.Validate(inst, value); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	items, err := f.instanceMap(inst, value)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Serialize maps every key to its value's serialized form.
func (f *DictField) Serialize(inst *Instance) (any, error) {
	value, err := f.Get(inst)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	items, err := f.instanceMap(inst, value)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(items))
	for key, item := range items {
		tree, err := item.Serialize()
		if err != nil {
			return nil, err
		}
		out[key] = tree
	}
	return out, nil
}

// Deserialize builds a fresh mapping via the configured constructor,
// constructing and deserializing a nested instance per raw entry.
func (f *DictField) Deserialize(inst *Instance, raw any) error {
	if raw == nil {
		return f.Set(inst, nil)
	}
	entries, ok := raw.(map[string]any)
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
	items := f.factory()
	for key, element := range entries {
		tree, ok := element.(map[string]any)
		if !ok {
			return &ValidationError{
				Model:  inst.typ.name,
				Field:  f.Name(),
				Value:  element,
				Reason: "mapping value is not a mapping",
			}
		}
		nested := typ.Empty()
		if err := nested.Deserialize(tree); err != nil {
			return err
		}
		items[key] = nested
	}
	return f.Set(inst, items)
}
