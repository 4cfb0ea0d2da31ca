// Package access defines the accessor capability: reading and writing
// fields of statically-typed, arbitrarily nested structs through a
// run-time sequence of string keys.
//
// Primitive leaf types (Integer, Double, String) terminate the
// recursion; struct types satisfy the contract by consuming one key and
// delegating the remainder to the named field's own implementation.
// Per-struct implementations are produced by stringly-gen (see
// cmd/stringly-gen), one delegation branch per declared field.
//
//	probe := telemetry.Probe{...}
//	got, err := access.Get(&probe, "reading.count")
//	err = access.Set(&probe, "reading.count", value.FromInt64(-7))
//
// Every operation is a pure, synchronous function of its inputs and
// never retains the receiver; callers own any mutual exclusion.
package access

import (
	"strings"

	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// Accessor is the capability every addressable type satisfies.
//
// Both operations consume the key sequence left to right: a struct level
// consumes exactly one key, a leaf requires that no keys remain. Errors
// are returned to the caller verbatim from the level that raised them;
// no level wraps or retries.
type Accessor interface {
	// GetValue returns the value reached by fully consuming keys.
	// It never partially applies a path and never mutates the receiver.
	GetValue(keys []string) (value.Value, error)

	// SetValue replaces the field reached by fully consuming keys.
	// The only mutation is the terminal whole-value assignment, so a
	// failure at any depth leaves the receiver unchanged.
	SetValue(keys []string, val value.Value) error

	// TypeName identifies the implementing type: the type tag constant
	// for leaves, the declared type name for structs.
	TypeName() string
}

// SplitKey splits a dotted key into its path segments. The empty key
// denotes the value itself and yields the empty path, not a single
// empty segment.
func SplitKey(key string) []string {
	if key == "" {
		return nil
	}

	return strings.Split(key, ".")
}

// Get reads the value at a dotted key, e.g. "inner.y". It carries no
// semantics beyond splitting: Get(a, k) == a.GetValue(SplitKey(k)).
func Get(a Accessor, key string) (value.Value, error) {
	return a.GetValue(SplitKey(key))
}

// Set writes the value at a dotted key, e.g. "inner.y". It carries no
// semantics beyond splitting: Set(a, k, v) == a.SetValue(SplitKey(k), v).
func Set(a Accessor, key string, val value.Value) error {
	return a.SetValue(SplitKey(key), val)
}
