// Package maps provides ordered maps backed by binary search trees.
//
// Two implementations share one contract: an unbalanced search tree, whose
// height depends on insertion order, and a red-black tree, which rebalances
// itself after every insertion and deletion so that its height stays within
// 2*log2(n+1). Both are generic over keys implementing sortable.Sortable.
//
// Neither tree is safe for concurrent use. Wrap one with
// NewThreadSafeOrderedMap when it must be shared between goroutines.
package maps

import "errors"

// ErrBrokenInvariant is wrapped by every violation reported from Verify.
// Seeing it means the tree was corrupted, either by a bug in the tree itself
// or by keys whose ordering changed after insertion.
var ErrBrokenInvariant = errors.New("broken tree invariant")
