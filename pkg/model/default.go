package model

// Factory produces a default value on demand. Factories must be cheap and
// side-effect free; the engine invokes them lazily on first read and memoizes
// the result per instance-field pair.
type Factory func() any

// Default is a tagged-absence container for a field default. The zero value
// means "no default provided" and is never conflated with a legitimate nil
// default.
type Default struct {
	value    any
	factory  Factory
	provided bool
}

// DefaultValue wraps a static default value.
func DefaultValue(v any) Default {
	return Default{value: v, provided: true}
}

// DefaultFactory wraps a zero-argument value producer invoked on first read.
func DefaultFactory(fn Factory) Default {
	return Default{factory: fn, provided: true}
}

// Provided reports whether a default exists at all.
func (d Default) Provided() bool { return d.provided }

// Value returns the static default value. The second result is false when no
// default was provided or when the default is factory-backed.
func (d Default) Value() (any, bool) {
	if !d.provided || d.factory != nil {
		return nil, false
	}
	return d.value, true
}

// isNilStatic reports a static nil default, which the table builder rejects
// unless the field allows null.
func (d Default) isNilStatic() bool {
	return d.provided && d.factory == nil && d.value == nil
}

func (d Default) materialize() any {
	if d.factory != nil {
		return d.factory()
	}
	return d.value
}
