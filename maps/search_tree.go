package maps

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/amp-labs/amp-trees/sortable"
)

// searchTreeMap is an unbalanced binary search tree implementation of the
// TreeMap interface. It never rebalances, so its height depends on the
// insertion order: random keys give an expected O(log n) height, while sorted
// keys degrade it into a linked list of height n.
//
// Deleting a node with two children replaces it with its in-order
// predecessor or successor, chosen by a coin flip. The flip gives no height
// guarantee.
type searchTreeMap[K sortable.Sortable[K], V any] struct {
	binaryTree[K, V]

	rand         *rand.Rand
	deletions    deletionCounters
	replacements replacementCounters
}

var _ TreeMap[sortable.Int, string] = (*searchTreeMap[sortable.Int, string])(nil)

// NewSearchTreeMap creates a new empty unbalanced search tree map.
// Use WithSeed or WithRand to make its deletions reproducible.
func NewSearchTreeMap[K sortable.Sortable[K], V any](opts ...Option) TreeMap[K, V] {
	cfg := newConfig(opts)

	return &searchTreeMap[K, V]{
		binaryTree:   newBinaryTree[K, V](cfg),
		rand:         cfg.random(),
		deletions:    newDeletionCounters(cfg.name, kindSearchTree),
		replacements: newReplacementCounters(cfg.name),
	}
}

// Put inserts the key with the given value, or replaces the value of an existing key.
func (t *searchTreeMap[K, V]) Put(key K, value V) {
	node, parent, dir := t.lookup(key)
	if node != nil {
		node.value = value

		return
	}

	t.attach(parent, dir, &treeNode[K, V]{key: key, value: value})
}

// Delete removes the key. It is a no-op if the key is absent.
func (t *searchTreeMap[K, V]) Delete(key K) {
	node := t.search(key)
	if node == nil {
		return
	}

	t.deletions[shapeOf(node)].Inc()
	t.deleteNode(node)
	t.size--
}

func (t *searchTreeMap[K, V]) deleteNode(node *treeNode[K, V]) {
	switch {
	case node.left != nil && node.right != nil:
		// The replacement sits at the bottom of a subtree of node and has at
		// most one child, so removing it takes one of the other two cases.
		replacement := t.chooseReplacement(node)
		node.key, node.value = replacement.key, replacement.value
		t.deleteNode(replacement)

	case node.left != nil:
		t.transplant(node, node.left)
		release(node)

	default:
		// Covers the leaf case too: transplanting a nil right child unlinks the node.
		t.transplant(node, node.right)
		release(node)
	}
}

// chooseReplacement picks the in-order predecessor or successor of a node
// with two children with equal probability.
func (t *searchTreeMap[K, V]) chooseReplacement(node *treeNode[K, V]) *treeNode[K, V] {
	var (
		choice      string
		replacement *treeNode[K, V]
	)

	if t.rand.IntN(2) == 0 {
		choice, replacement = choicePredecessor, maxNode(node.left)
		t.replacements.predecessor.Inc()
	} else {
		choice, replacement = choiceSuccessor, minNode(node.right)
		t.replacements.successor.Inc()
	}

	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("replacing deleted node",
			"map", t.name,
			"choice", choice,
			"key", replacement.key)
	}

	return replacement
}
