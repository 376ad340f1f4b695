// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in ordered maps.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and ready-to-use
// implementations: [Int], [Int64], [Uint64], [Byte] and [String] for the
// built-in types, plus three string-like keys with their own ordering:
//
//   - [NaturalString] orders embedded numbers numerically ("v2" < "v10").
//   - [FoldedString] compares case-insensitively using Unicode case folding.
//   - [UUID] orders UUIDs by their raw bytes.
//
// These types are designed to work with the trees in
// [github.com/amp-labs/amp-trees/maps] (see [github.com/amp-labs/amp-trees/maps.NewRedBlackTreeMap]
// and [github.com/amp-labs/amp-trees/maps.NewSearchTreeMap]).
//
// The Sortable interface extends [github.com/amp-labs/amp-trees/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Compare] turns the pair into a single three-way result.
//
// # Usage
//
//	m := maps.NewRedBlackTreeMap[sortable.Int, string]()
//	m.Put(sortable.Int(42), "answer")
//	m.Put(sortable.Int(10), "ten")
//
//	// Keys come back in sorted order: 10, 42
//	for k, v := range m.Seq() {
//	    fmt.Println(int(k), v)
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// Equals and LessThan must agree: for any a and b exactly one of a.LessThan(b),
// a.Equals(b) and b.LessThan(a) holds. The trees rely on this and do not check it.
package sortable
