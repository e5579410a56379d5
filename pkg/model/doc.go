// Package model implements a declarative object-modeling engine. Types
// declare an immutable, ordered table of named field specs — each with an
// optional default, a required/nullable policy, and a composable validator —
// and instances hold per-field state governed by that table. The engine
// provides lazy, memoized default materialization, recursive validation, and
// bidirectional conversion between instances and JSON-compatible value trees
// (maps, slices, scalars, nil).
//
// Field tables are built once via NewType and are safe to share read-only
// across any number of instances. Instance state is private to each instance
// and carries no synchronization: concurrent use of distinct instances is
// safe, concurrent mutation of the same instance is not. Lazy default
// materialization is not atomic — concurrent first reads of the same
// instance-field pair can invoke a default factory more than once.
//
// The engine neither parses nor emits text; pkg/codec bridges value trees to
// JSON and YAML payloads.
package model
