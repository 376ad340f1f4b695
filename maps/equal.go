package maps

import (
	"iter"

	"github.com/amp-labs/amp-trees/sortable"
)

// Equal reports whether a and b hold the same keys, in the same order, with
// values that are equal under eq. The trees may be of different kinds and
// shapes.
func Equal[K sortable.Sortable[K], V any](a, b TreeMap[K, V], eq func(V, V) bool) bool {
	if a.Size() != b.Size() {
		return false
	}

	next, stop := iter.Pull2(a.Seq())
	defer stop()

	for keyB, valueB := range b.Seq() {
		keyA, valueA, ok := next()
		if !ok || !keyA.Equals(keyB) || !eq(valueA, valueB) {
			return false
		}
	}

	_, _, more := next()

	return !more
}
