package model

import (
	"fmt"
	"sync"
)

// Registry resolves symbolic type references. It enables forward references
// to sibling types and self-referential collections: declare a list or object
// field with TypeNamed, register the target type when it is built, and the
// reference resolves lazily on first use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*ModelType
}

// NewRegistry creates an empty type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*ModelType)}
}

// Register adds a built type under its name. Registering a second type under
// the same name is an error.
func (r *Registry) Register(t *ModelType) error {
	if t == nil {
		return fmt.Errorf("model: registry cannot register a nil type")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[t.name]; exists {
		return fmt.Errorf("model: type %q is already registered", t.name)
	}
	r.types[t.name] = t
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*ModelType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// TypeRef is a lazily-resolved reference cell for a nested model type: either
// a direct handle or a symbolic name resolved against a registry on use.
// A TypeRef is immutable after construction; symbolic resolution goes through
// the registry's guarded lookup, so refs shared by a field table are safe for
// concurrent use across instances.
type TypeRef struct {
	typ  *ModelType
	name string
	reg  *Registry
}

// TypeOf references an already built type directly.
func TypeOf(t *ModelType) TypeRef {
	return TypeRef{typ: t}
}

// TypeNamed references a type symbolically by name. Resolution is deferred
// until the reference is first used, so the target may be registered later.
func TypeNamed(name string, reg *Registry) TypeRef {
	return TypeRef{name: name, reg: reg}
}

// Name returns the referenced type's name without forcing resolution.
func (r TypeRef) Name() string {
	if r.typ != nil {
		return r.typ.name
	}
	return r.name
}

// Resolved returns the direct handle when one is available, without touching
// the registry.
func (r TypeRef) Resolved() (*ModelType, bool) {
	return r.typ, r.typ != nil
}

// Resolve returns the referenced type, consulting the registry for symbolic
// references. A reference that does not resolve fails with
// *UnresolvedReferenceError.
func (r TypeRef) Resolve() (*ModelType, error) {
	if r.typ != nil {
		return r.typ, nil
	}
	if r.reg == nil {
		return nil, &UnresolvedReferenceError{Name: r.name}
	}
	t, ok := r.reg.Lookup(r.name)
	if !ok {
		return nil, &UnresolvedReferenceError{Name: r.name}
	}
	return t, nil
}
