package maps

import (
	"iter"
	"slices"
	"sync"

	"github.com/amp-labs/amp-trees/optional"
	"github.com/amp-labs/amp-trees/sortable"
)

// NewThreadSafeOrderedMap wraps an existing TreeMap with thread-safe access using sync.RWMutex.
// Write operations (Put, Delete, Clear) acquire an exclusive lock, while read operations
// use a shared read lock, so that any number of readers can proceed together.
//
// Wrapping a map that is already thread-safe returns it unchanged, and wrapping nil returns nil.
//
// Example usage:
//
//	tree := maps.NewRedBlackTreeMap[sortable.String, int]()
//	safeMap := maps.NewThreadSafeOrderedMap(tree)
//	safeMap.Put("key", 42) // thread-safe
func NewThreadSafeOrderedMap[K sortable.Sortable[K], V any](m TreeMap[K, V]) TreeMap[K, V] {
	if m == nil {
		return nil
	}

	tsom, ok := m.(*threadSafeOrderedMap[K, V])
	if ok {
		// Already thread-safe, return as-is
		return tsom
	}

	return &threadSafeOrderedMap[K, V]{
		internal: m,
	}
}

// threadSafeOrderedMap is a decorator that wraps any TreeMap implementation with thread-safe access.
type threadSafeOrderedMap[K sortable.Sortable[K], V any] struct {
	mutex    sync.RWMutex  // Protects access to internal map
	internal TreeMap[K, V] // Underlying tree
}

var _ TreeMap[sortable.Int, string] = (*threadSafeOrderedMap[sortable.Int, string])(nil)

// Put inserts or updates a key-value pair under the write lock.
func (t *threadSafeOrderedMap[K, V]) Put(key K, value V) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Put(key, value)
}

// Delete removes a key under the write lock.
func (t *threadSafeOrderedMap[K, V]) Delete(key K) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Delete(key)
}

// Clear removes all entries under the write lock.
func (t *threadSafeOrderedMap[K, V]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *threadSafeOrderedMap[K, V]) Get(key K) optional.Value[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Get(key)
}

func (t *threadSafeOrderedMap[K, V]) GetOrElse(key K, defaultValue V) V {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.GetOrElse(key, defaultValue)
}

func (t *threadSafeOrderedMap[K, V]) Contains(key K) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(key)
}

func (t *threadSafeOrderedMap[K, V]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeOrderedMap[K, V]) Min() optional.Value[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Min()
}

func (t *threadSafeOrderedMap[K, V]) Max() optional.Value[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Max()
}

func (t *threadSafeOrderedMap[K, V]) Predecessor(key K) optional.Value[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Predecessor(key)
}

func (t *threadSafeOrderedMap[K, V]) Successor(key K) optional.Value[K] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Successor(key)
}

func (t *threadSafeOrderedMap[K, V]) Keys() []K {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Keys()
}

func (t *threadSafeOrderedMap[K, V]) Height() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Height()
}

func (t *threadSafeOrderedMap[K, V]) Verify() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Verify()
}

// snapshot copies every entry in ascending key order under the read lock.
func (t *threadSafeOrderedMap[K, V]) snapshot() []KeyValuePair[K, V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	accum := make([]KeyValuePair[K, V], 0, t.internal.Size())

	for key, value := range t.internal.Seq() {
		accum = append(accum, KeyValuePair[K, V]{Key: key, Value: value})
	}

	return accum
}

// Seq returns an iterator over a snapshot of the map taken when Seq is called.
// The lock is not held while the caller iterates, so the loop body may
// modify the map. Such changes are not visible to the running iteration.
func (t *threadSafeOrderedMap[K, V]) Seq() iter.Seq2[K, V] {
	accum := t.snapshot()

	return func(yield func(K, V) bool) {
		for _, kv := range accum {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Backward returns a descending iterator over a snapshot of the map, with the same semantics as Seq.
func (t *threadSafeOrderedMap[K, V]) Backward() iter.Seq2[K, V] {
	accum := t.snapshot()

	return func(yield func(K, V) bool) {
		for _, kv := range slices.Backward(accum) {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// ForEach applies f to each entry of a snapshot, without holding the lock during callbacks.
func (t *threadSafeOrderedMap[K, V]) ForEach(f func(key K, value V)) {
	for _, kv := range t.snapshot() {
		f(kv.Key, kv.Value)
	}
}
