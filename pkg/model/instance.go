package model

// Instance holds the mutable per-instance state of a model type. All
// attribute access routes through the type's field table. State is
// unsynchronized; see the package documentation for the concurrency contract.
type Instance struct {
	typ   *ModelType
	state map[string]any
}

// Type returns the instance's model type.
func (i *Instance) Type() *ModelType { return i.typ }

func (i *Instance) spec(attr string) (FieldSpec, error) {
	spec, ok := i.typ.byAttr[attr]
	if !ok {
		return nil, &UnknownFieldError{Model: i.typ.name, Field: attr}
	}
	return spec, nil
}

// Get returns the named field's value, materializing its default on first
// read. Unknown attributes fail with *UnknownFieldError, unset fields with no
// default with *ValueRequiredError.
func (i *Instance) Get(attr string) (any, error) {
	spec, err := i.spec(attr)
	if err != nil {
		return nil, err
	}
	return spec.Get(i)
}

// Set validates and stores a value for the named field.
func (i *Instance) Set(attr string, value any) error {
	spec, err := i.spec(attr)
	if err != nil {
		return err
	}
	return spec.Set(i, value)
}

// Has reports whether the named field is present in state. Unknown attributes
// report false.
func (i *Instance) Has(attr string) bool {
	spec, ok := i.typ.byAttr[attr]
	return ok && spec.HasValue(i)
}

// ClearField removes the named field's value. Required fields cannot be
// cleared.
func (i *Instance) ClearField(attr string) error {
	spec, err := i.spec(attr)
	if err != nil {
		return err
	}
	return spec.Clear(i)
}

// Clear clears every declared field in table order, stopping at the first
// failure. A table containing a required field cannot be cleared.
func (i *Instance) Clear() error {
	for _, entry := range i.typ.order {
		if err := entry.spec.Clear(i); err != nil {
			return err
		}
	}
	return nil
}

// Validate runs whole-object validation: every field that has a stored value
// or is required is fetched — the fetch itself fails with *ValueRequiredError
// for an unset required field — and validated, in table order, stopping at
// the first failure.
func (i *Instance) Validate() error {
	for _, entry := range i.typ.order {
		spec := entry.spec
		if !spec.HasValue(i) && !spec.Required() {
			continue
		}
		value, err := spec.Get(i)
		if err != nil {
			return err
		}
		if err := spec.Validate(i, value); err != nil {
			return err
		}
	}
	return nil
}

// Serialize produces a value tree keyed by external field name, containing
// exactly the fields that can provide a value. A required field that cannot
// provide one fails with *ValueRequiredError instead of being dropped.
func (i *Instance) Serialize() (map[string]any, error) {
	out := make(map[string]any, len(i.typ.order))
	for _, entry := range i.typ.order {
		spec := entry.spec
		if !spec.CanProvideValue(i) {
			if spec.Required() {
				return nil, &ValueRequiredError{Model: i.typ.name, Field: spec.Name()}
			}
			continue
		}
		value, err := spec.Serialize(i)
		if err != nil {
			return nil, err
		}
		out[spec.Name()] = value
	}
	return out, nil
}

// Deserialize routes every known key of the raw value tree through its
// field's Deserialize. Keys that do not name a field are ignored, keeping
// payloads forward and backward compatible.
func (i *Instance) Deserialize(raw map[string]any) error {
	for key, value := range raw {
		spec, ok := i.typ.byName[key]
		if !ok {
			continue
		}
		if err := spec.Deserialize(i, value); err != nil {
			return err
		}
	}
	return nil
}
