package maps

import (
	"context"
	"log/slog"

	"github.com/amp-labs/amp-trees/assert"
	"github.com/amp-labs/amp-trees/sortable"
)

// redBlackTreeMap is a self-balancing binary search tree implementation of the TreeMap interface.
// It maintains O(log n) performance for insertions, deletions, and lookups by enforcing
// red-black tree properties:
//  1. Every node is either red or black
//  2. The root is black
//  3. All leaves (nil nodes) are black
//  4. Red nodes cannot have red children
//  5. Every path from root to leaf contains the same number of black nodes
//
// No sentinel node is allocated. A nil child reads as black and is never written.
type redBlackTreeMap[K sortable.Sortable[K], V any] struct {
	binaryTree[K, V]

	deletions deletionCounters
	balance   *balanceCounters
}

var _ TreeMap[sortable.Int, string] = (*redBlackTreeMap[sortable.Int, string])(nil)

// NewRedBlackTreeMap creates a new empty red-black tree map.
// The map maintains O(log n) performance for all operations by keeping the tree balanced.
func NewRedBlackTreeMap[K sortable.Sortable[K], V any](opts ...Option) TreeMap[K, V] {
	cfg := newConfig(opts)

	return &redBlackTreeMap[K, V]{
		binaryTree: newBinaryTree[K, V](cfg),
		deletions:  newDeletionCounters(cfg.name, kindRedBlackTree),
		balance:    newBalanceCounters(cfg.name),
	}
}

// Put inserts the key with the given value, or replaces the value of an existing key.
// A new key is attached as a red leaf and the tree is then repaired by fixupPut.
func (t *redBlackTreeMap[K, V]) Put(key K, value V) {
	node, parent, dir := t.lookup(key)
	if node != nil {
		node.value = value

		return
	}

	node = &treeNode[K, V]{key: key, value: value, color: red}
	t.attach(parent, dir, node)
	t.fixupPut(node)
}

// Delete removes the key. It is a no-op if the key is absent.
func (t *redBlackTreeMap[K, V]) Delete(key K) {
	node := t.search(key)
	if node == nil {
		return
	}

	t.deletions[shapeOf(node)].Inc()
	t.deleteNode(node)
	t.size--
}

// deleteNode unlinks node from the tree and restores the red-black properties.
func (t *redBlackTreeMap[K, V]) deleteNode(node *treeNode[K, V]) {
	switch {
	case node.left != nil && node.right != nil:
		// Two children: the successor has no left child, so removing it
		// falls into one of the other two cases. The node keeps its color.
		successor := minNode(node.right)
		node.key, node.value = successor.key, successor.value
		t.deleteNode(successor)

	case node.left == nil && node.right == nil:
		// The fix-up runs while the node is still in place, so that it
		// stands in for the black leaf that is about to disappear.
		if node.color == black {
			t.fixupDelete(node)
		}

		t.transplant(node, nil)
		release(node)

	default:
		child := node.left
		if child == nil {
			child = node.right
		}

		t.transplant(node, child)

		// Removing a black node shortens every path through the child. A red
		// child absorbs the deficiency by turning black in the final step of
		// the fix-up.
		if node.color == black {
			t.fixupDelete(child)
		}

		release(node)
	}
}

// rotate counts the rotation and delegates to the shared rotation primitives.
func (t *redBlackTreeMap[K, V]) rotate(pivot *treeNode[K, V], dir direction) {
	t.balance.rotations[dir].Inc()
	t.binaryTree.rotate(pivot, dir)
}

// fixupPut restores red-black tree properties after inserting the red node x.
// The only property that can be broken is that a red node has no red
// children, and only between x and its parent. Each iteration either fixes
// the violation or moves it two levels up.
//
// side is the side of the parent below the grandparent. The loop body is
// written once and mirrored through side:
//  1. Uncle is red - recolor parent, uncle, and grandparent, continue from the grandparent
//  2. Uncle is black, x is an inner grandchild - rotate around the parent into case 3
//  3. Uncle is black, x is an outer grandchild - rotate around the grandparent and recolor
//
//nolint:varnamelen // Standard red-black tree variable names
func (t *redBlackTreeMap[K, V]) fixupPut(x *treeNode[K, V]) {
	for x != t.root && colorOf(x.parent) == red {
		parent := x.parent

		grandparent := parent.parent
		if grandparent == nil {
			// A red root is painted black below.
			break
		}

		side := parent.side()

		uncle := grandparent.child(side.opposite())
		if colorOf(uncle) == red {
			t.traceFixup(operationInsert, 1, side)

			parent.color = black
			uncle.color = black
			grandparent.color = red
			x = grandparent

			continue
		}

		if x == parent.child(side.opposite()) {
			t.traceFixup(operationInsert, 2, side)

			x = parent
			t.rotate(x, side)
			parent = x.parent
		}

		t.traceFixup(operationInsert, 3, side)

		parent.color = black
		grandparent.color = red
		t.rotate(grandparent, side.opposite())
	}

	t.root.color = black
}

// fixupDelete restores red-black tree properties after the removal of a
// black node. x carries an extra black: every path through x is one black
// node short of its siblings' paths.
//
// side is the side of x below its parent, and far is the side of the sibling:
//  1. Sibling is red - rotate and recolor to get a black sibling
//  2. Sibling is black with two black children - recolor sibling, move the problem up
//  3. Sibling is black, its far child black, near child red - rotate the red child up into case 4
//  4. Sibling is black with a red far child - rotate around the parent and recolor, done
//
// A red x, or the root, absorbs the extra black by being painted black.
//
//nolint:varnamelen // Standard red-black tree variable names
func (t *redBlackTreeMap[K, V]) fixupDelete(x *treeNode[K, V]) {
	for x != t.root && colorOf(x) == black {
		parent := x.parent
		side := x.side()
		far := side.opposite()

		// x is short one black, so its sibling subtree holds at least one black node.
		sibling := parent.child(far)
		assert.True(sibling != nil, "fixupDelete: %v has no sibling", x)

		if sibling.color == red {
			t.traceFixup(operationDelete, 1, side)

			sibling.color = black
			parent.color = red
			t.rotate(parent, side)
			sibling = parent.child(far)
		}

		if colorOf(sibling.left) == black && colorOf(sibling.right) == black {
			t.traceFixup(operationDelete, 2, side)

			sibling.color = red
			x = parent

			continue
		}

		if colorOf(sibling.child(far)) == black {
			t.traceFixup(operationDelete, 3, side)

			sibling.child(side).color = black
			sibling.color = red
			t.rotate(sibling, far)
			sibling = parent.child(far)
		}

		t.traceFixup(operationDelete, 4, side)

		sibling.color = parent.color
		parent.color = black
		sibling.child(far).color = black
		t.rotate(parent, side)

		x = t.root
	}

	x.color = black
}

// traceFixup records a fix-up case in the metrics and the debug log.
func (t *redBlackTreeMap[K, V]) traceFixup(operation string, fixupCase int, side direction) {
	switch operation {
	case operationInsert:
		t.balance.insertCases[fixupCase-1][side].Inc()
	default:
		t.balance.deleteCases[fixupCase-1][side].Inc()
	}

	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("red-black fix-up",
			"map", t.name,
			"operation", operation,
			"case", fixupCase,
			"side", side.String())
	}
}
