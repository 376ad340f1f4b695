// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Ordering is the outcome of a three-way comparison.
type Ordering int

const (
	// Less means the left operand sorts before the right one.
	Less Ordering = -1
	// Equal means neither operand sorts before the other.
	Equal Ordering = 0
	// Greater means the left operand sorts after the right one.
	Greater Ordering = 1
)

// String returns a human-readable representation of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "not recognized"
	}
}

// Reverse flips Less and Greater, leaving Equal untouched.
func (o Ordering) Reverse() Ordering {
	return -o
}
