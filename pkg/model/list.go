package model

// ListField holds an ordered sequence of nested model instances. The item
// type may be a direct handle or a symbolic forward reference resolved
// lazily on first use, which supports self-referential and not-yet-defined
// sibling types.
type ListField struct {
	*Field
	ref TypeRef
}

var _ FieldSpec = (*ListField)(nil)

// NewListField creates an ordered nested-sequence field for the referenced
// item type.
func NewListField(ref TypeRef, opts ...FieldOption) *ListField {
	return &ListField{Field: NewField(opts...), ref: ref}
}

// TypeRef returns the item type reference.
func (f *ListField) TypeRef() TypeRef { return f.ref }

// instanceSlice coerces a stored value to the nested-instance sequence the
// collection operates on. Both []*Instance and []any of instances are
// accepted.
func (f *ListField) instanceSlice(inst *Instance, value any) ([]*Instance, error) {
	switch items := value.(type) {
	case []*Instance:
		return items, nil
	case []any:
		out := make([]*Instance, len(items))
		for idx, item := range items {
			nested, ok := item.(*Instance)
			if !ok {
				return nil, &ValidationError{
					Model:  inst.typ.name,
					Field:  f.Name(),
					Value:  item,
					Reason: "sequence element is not a model instance",
				}
			}
			out[idx] = nested
		}
		return out, nil
	default:
		return nil, &ValidationError{
			Model:  inst.typ.name,
			Field:  f.Name(),
			Value:  value,
			Reason: "expected a sequence of model instances",
		}
	}
}

func (f *ListField) Set(inst *Instance, value any) error {
	if err := f.Validate(inst, value); err != nil {
		return err
	}
	f.store(inst, value)
	return nil
}

// Validate runs the base checks and then validates every element in order,
// failing fast on the first violation.
func (f *ListField) Validate(inst *Instance, value any) error {
	if err := f.Field.Validate(inst, value); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	items, err := f.instanceSlice(inst, value)
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

// Serialize maps each element to its serialized form, preserving order.
func (f *ListField) Serialize(inst *Instance) (any, error) {
	value, err := f.Get(inst)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	items, err := f.instanceSlice(inst, value)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for idx, item := range items {
		tree, err := item.Serialize()
		if err != nil {
			return nil, err
		}
		out[idx] = tree
	}
	return out, nil
}

// Deserialize constructs a fresh instance per raw element, in order, and
// replaces the field's value with the new sequence.
func (f *ListField) Deserialize(inst *Instance, raw any) error {
	if raw == nil {
		return f.Set(inst, nil)
	}
	elements, ok := raw.([]any)
	if !ok {
		return &ValidationError{
			Model:  inst.typ.name,
			Field:  f.Name(),
			Value:  raw,
			Reason: "expected a sequence",
		}
	}
	typ, err := f.ref.Resolve()
	if err != nil {
		return err
	}
	items := make([]*Instance, 0, len(elements))
	for _, element := range elements {
		tree, ok := element.(map[string]any)
		if !ok {
			return &ValidationError{
				Model:  inst.typ.name,
				Field:  f.Name(),
				Value:  element,
				Reason: "sequence element is not a mapping",
			}
		}
		nested := typ.Empty()
		if err := nested.Deserialize(tree); err != nil {
			return err
		}
		items = append(items, nested)
	}
	return f.Set(inst, items)
}
