package maps

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/amp-labs/amp-trees/sortable"
	"github.com/zeebo/xxh3"
)

// EncodeFunc serializes one entry for Digest. Two entries must produce equal
// bytes exactly when they are considered equal.
type EncodeFunc[K any, V any] func(key K, value V) []byte

// Digest returns a 64-bit xxh3 hash of the entries of m in ascending key
// order. It depends only on the contents of the map, not on the shape of the
// tree, so two maps holding the same entries have the same digest whichever
// implementation or insertion order produced them.
//
// Each encoded entry is length-prefixed, so the boundaries between entries
// are part of the digest.
func Digest[K sortable.Sortable[K], V any](m TreeMap[K, V], encode EncodeFunc[K, V]) uint64 {
	return DigestWith(m, encode, xxh3.New())
}

// DigestWith is Digest with a caller-supplied 64-bit hash. The hasher is reset first.
func DigestWith[K sortable.Sortable[K], V any](m TreeMap[K, V], encode EncodeFunc[K, V], hasher hash.Hash64) uint64 {
	hasher.Reset()

	var prefix [binary.MaxVarintLen64]byte

	for key, value := range m.Seq() {
		entry := encode(key, value)

		n := binary.PutUvarint(prefix[:], uint64(len(entry)))
		_, _ = hasher.Write(prefix[:n])
		_, _ = hasher.Write(entry)
	}

	return hasher.Sum64()
}

// FormatEntry encodes an entry with the %v verb of package fmt, for keys and
// values whose default formatting identifies them.
func FormatEntry[K any, V any](key K, value V) []byte {
	return fmt.Appendf(nil, "%v\x00%v", key, value)
}
