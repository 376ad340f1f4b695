// Package optional provides a type-safe Optional type for representing values that may or may not be present.
// The ordered maps return it wherever a lookup can come up empty (Get, Min, Max,
// Predecessor, Successor), so "not found" is a value rather than an error.
package optional

import (
	"fmt"
	"iter"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
// The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// All returns an iterator that yields the value if present, or yields nothing if empty.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether the value is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value if present, or panics if empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or the provided default value if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// OrElse returns this Value if it contains a value, or the alternative Value if empty.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternative
}

// Equals compares this Value with another using the provided equality function.
// Two empty Values are equal; an empty and a non-empty Value never are.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the value inside the Value using the provided function.
// Returns Some(f(value)) if the Value contains a value, or None if empty.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
