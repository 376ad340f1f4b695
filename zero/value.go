// Package zero provides the zero value of a generic type parameter.
package zero

// Value returns the zero value for type T.
// The trees use it to clear the key and value held by a node they have unlinked.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
