// Package tycon implements typed constant sets: C-style enums with runtime
// introspection. A Set holds the parallel value and name tables for one
// generated (or hand-defined) constant set and provides bidirectional
// name/value lookup, validation, ordered iteration, and range metadata.
//
// Sets are normally defined by generated code (see tycongen and cmd/tycon)
// but can be built directly with Define for hand-written constant groups.
package tycon

import (
	"fmt"
	"sync"
)

// Integer is the constraint for underlying types of a constant set.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Set is an immutable table of declared constants for one set type.
// The value table and the raw-name table are index-parallel and preserve
// declaration order. Safe for concurrent use.
type Set[T Integer] struct {
	name   string
	values []T
	raw    []string // declarations as written, possibly with "= expr" suffixes

	min, max T // single fold over the value table, computed at construction

	nameOnce sync.Once
	names    []string // trimmed names, built lazily by processNames
}

// NewSet builds a Set from a raw-name table and an already-resolved value
// table. This is the constructor emitted by generated code, where values are
// resolved at generation time.
//
// NewSet panics on an empty declaration list or on tables of unequal length:
// both are generation-time invariants, not data-dependent conditions.
func NewSet[T Integer](name string, raw []string, values []T) *Set[T] {
	if len(values) == 0 {
		panic(NewError(CodeEmptySet, name, "no constants declared"))
	}
	if len(raw) != len(values) {
		panic(fmt.Sprintf("tycon: %s: %d raw names for %d values", name, len(raw), len(values)))
	}

	s := &Set[T]{
		name:   name,
		values: values,
		raw:    raw,
		min:    values[0],
		max:    values[0],
	}
	for _, v := range values[1:] {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	return s
}

// Decl is one declaration in a hand-defined constant set.
type Decl[T Integer] struct {
	// Raw is the declaration as written, e.g. "Green" or "Green = 5".
	// Only the portion before the first '=', space, or tab is the name.
	Raw string

	// Value is the explicit resolved value when Explicit is true.
	Value T

	// Explicit marks Value as assigned rather than auto-incremented.
	Explicit bool
}

// Auto returns a declaration whose value auto-increments from the previous
// declaration (0 for the first).
func Auto[T Integer](raw string) Decl[T] {
	return Decl[T]{Raw: raw}
}

// Assign returns a declaration with an explicitly assigned value.
func Assign[T Integer](raw string, v T) Decl[T] {
	return Decl[T]{Raw: raw, Value: v, Explicit: true}
}

// Define builds a Set from ordered declarations, resolving omitted values by
// auto-increment: each unassigned declaration takes the previous resolved
// value plus one, and an unassigned first declaration takes 0. This mirrors
// Go (and C) const-group semantics.
//
// Duplicate resolved values are legal and act as aliases; lookups return the
// first match in declaration order.
func Define[T Integer](name string, decls ...Decl[T]) (*Set[T], error) {
	if len(decls) == 0 {
		return nil, NewError(CodeEmptySet, name, "no constants declared")
	}

	raw := make([]string, len(decls))
	values := make([]T, len(decls))
	var next T
	for i, d := range decls {
		if d.Explicit {
			next = d.Value
		}
		raw[i] = d.Raw
		values[i] = next
		next++
	}
	return NewSet(name, raw, values), nil
}

// TypeName returns the set's type name, e.g. "Color".
func (s *Set[T]) TypeName() string { return s.name }

// Size returns the number of declared constants.
func (s *Set[T]) Size() int { return len(s.values) }

// First returns the first declared value.
func (s *Set[T]) First() T { return s.values[0] }

// Last returns the last declared value.
func (s *Set[T]) Last() T { return s.values[len(s.values)-1] }

// Min returns the smallest declared value.
func (s *Set[T]) Min() T { return s.min }

// Max returns the largest declared value.
func (s *Set[T]) Max() T { return s.max }

// Span returns max - min + 1: the size of the bounding interval, not the
// count of distinct values. Span >= Size unless duplicate values shrink the
// set below its bounds. The subtraction is exact in modular 64-bit
// arithmetic for every underlying type; only a set spanning the full 64-bit
// range wraps to 0.
func (s *Set[T]) Span() uint64 {
	return widen(s.max) - widen(s.min) + 1
}

// widen converts a set value to uint64. Signed values sign-extend, so the
// difference of two widened values is the true difference mod 2^64.
func widen[T Integer](v T) uint64 {
	return uint64(v)
}
