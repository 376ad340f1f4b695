package maps

import (
	"iter"

	"github.com/amp-labs/amp-trees/optional"
	"github.com/amp-labs/amp-trees/sortable"
)

// KeyValuePair is a single map entry. It is used when entries have to be
// materialized, for example when a thread-safe map snapshots its contents.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// Map is a key-value store where keys are totally ordered by their
// Equals and LessThan methods. Keys are unique: putting an existing key
// replaces its value and leaves the size unchanged.
//
// Thread-safety: implementations are not guaranteed to be thread-safe unless
// explicitly documented. Concurrent access must be synchronized by the caller.
type Map[K sortable.Sortable[K], V any] interface {
	// Put inserts the key with the given value, or replaces the value if the
	// key is already present.
	Put(key K, value V)

	// Get returns the value for the key, or None if the key is absent.
	Get(key K) optional.Value[V]

	// Delete removes the key and its value. It is a no-op if the key is absent.
	Delete(key K)

	// Contains reports whether the key is present.
	Contains(key K) bool

	// Size returns the number of keys in the map. It runs in constant time.
	Size() int
}

// OrderedMap is a Map that can also answer questions about key order.
type OrderedMap[K sortable.Sortable[K], V any] interface {
	Map[K, V]

	// Min returns the smallest key, or None if the map is empty.
	Min() optional.Value[K]

	// Max returns the largest key, or None if the map is empty.
	Max() optional.Value[K]

	// Predecessor returns the largest key smaller than the given key.
	// It returns None if the key is absent or if it is the smallest key.
	Predecessor(key K) optional.Value[K]

	// Successor returns the smallest key larger than the given key.
	// It returns None if the key is absent or if it is the largest key.
	Successor(key K) optional.Value[K]
}

// TreeMap is an OrderedMap backed by a binary search tree. On top of the
// ordered map operations it offers ordered iteration and a structural self-check.
//
//nolint:interfacebloat // one cohesive surface shared by every tree in this package
type TreeMap[K sortable.Sortable[K], V any] interface {
	OrderedMap[K, V]

	// GetOrElse returns the value for the key, or defaultValue if the key is absent.
	GetOrElse(key K, defaultValue V) V

	// Clear removes every entry, leaving the map empty.
	Clear()

	// Seq returns an iterator over the entries in ascending key order.
	// The map must not be modified while the iteration is in progress.
	Seq() iter.Seq2[K, V]

	// Backward returns an iterator over the entries in descending key order.
	// The map must not be modified while the iteration is in progress.
	Backward() iter.Seq2[K, V]

	// Keys returns all keys in ascending order.
	Keys() []K

	// ForEach calls f for every entry in ascending key order.
	ForEach(f func(key K, value V))

	// Height returns the number of nodes on the longest path from the root
	// to a leaf, or 0 for an empty map.
	Height() int

	// Verify checks every structural invariant of the tree. It returns nil
	// for a well-formed tree, otherwise an error joining one entry per
	// violation found, each wrapping ErrBrokenInvariant.
	Verify() error
}
