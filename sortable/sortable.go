// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-trees/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare performs a three-way comparison of a and b using their Equals and LessThan methods.
func Compare[T Sortable[T]](a, b T) compare.Ordering {
	switch {
	case a.Equals(b):
		return compare.Equal
	case a.LessThan(b):
		return compare.Less
	default:
		return compare.Greater
	}
}

// Min returns the smaller of a and b, preferring a when they are equal.
func Min[T Sortable[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}

	return a
}

// Max returns the larger of a and b, preferring a when they are equal.
func Max[T Sortable[T]](a, b T) T {
	if a.LessThan(b) {
		return b
	}

	return a
}
