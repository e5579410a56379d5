package model

// ProxyField is a read-only alias exposing another field's value under its
// own external name. It bypasses instance state entirely: Get delegates to
// the target attribute, HasValue always reports true, and writes are
// rejected. Deserialize ignores its key so serialized payloads containing the
// proxied value round-trip cleanly.
type ProxyField struct {
	*Field
	attr string
}

var _ FieldSpec = (*ProxyField)(nil)

// NewProxyField creates a proxy delegating to the given attribute name.
func NewProxyField(attr string, opts ...FieldOption) *ProxyField {
	return &ProxyField{Field: NewField(opts...), attr: attr}
}

// Target returns the attribute name the proxy delegates to.
func (f *ProxyField) Target() string { return f.attr }

func (f *ProxyField) Get(inst *Instance) (any, error) {
	return inst.Get(f.attr)
}

func (f *ProxyField) Set(inst *Instance, value any) error {
	return ErrReadOnlyField
}

// Clear is a no-op: a proxy owns no state.
func (f *ProxyField) Clear(inst *Instance) error { return nil }

func (f *ProxyField) HasValue(inst *Instance) bool { return true }

func (f *ProxyField) CanProvideValue(inst *Instance) bool { return true }

func (f *ProxyField) Serialize(inst *Instance) (any, error) {
	return f.Get(inst)
}

// Deserialize is lenient: the proxy exposes a computed value, not stored
// state, so its key in a payload carries no information.
func (f *ProxyField) Deserialize(inst *Instance, raw any) error { return nil }
