package maps

import (
	"github.com/amp-labs/amp-trees/errors"
	"github.com/amp-labs/amp-trees/sortable"
)

// verifyLinks walks the whole tree and records every broken search tree
// invariant: keys out of order, child and parent links that disagree, and a
// size that does not match the number of reachable nodes.
//
// Keys are checked against the in-order predecessor rather than against
// subtree bounds. An in-order walk that yields strictly increasing keys is
// equivalent to the BST property.
func (t *binaryTree[K, V]) verifyLinks(errs *errors.Collection) {
	if t.root != nil && t.root.parent != nil {
		errs.Addf("%w: root %v has parent %v", ErrBrokenInvariant, t.root, t.root.parent)
	}

	var (
		count    int
		previous *treeNode[K, V]
	)

	// In-order walk over child links only; parent links are what is being checked.
	var stack []*treeNode[K, V]
	node := t.root

	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.left
		}

		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		for _, child := range []*treeNode[K, V]{node.left, node.right} {
			if child != nil && child.parent != node {
				errs.Addf("%w: child %v of %v points to parent %v",
					ErrBrokenInvariant, child, node, child.parent)
			}
		}

		if previous != nil && !previous.key.LessThan(node.key) {
			errs.Addf("%w: key %v is not smaller than its in-order successor %v",
				ErrBrokenInvariant, previous.key, node.key)
		}

		previous = node
		node = node.right
	}

	if count != t.size {
		errs.Addf("%w: size is %d but %d nodes are reachable", ErrBrokenInvariant, t.size, count)
	}
}

// Verify checks the search tree invariants: strictly increasing in-order
// keys, consistent parent links and an accurate size.
func (t *searchTreeMap[K, V]) Verify() error {
	var errs errors.Collection

	t.verifyLinks(&errs)

	return errs.GetError()
}

// Verify checks the search tree invariants shared with the unbalanced tree,
// and additionally that the root is black, that no red node has a red child
// and that every root-to-leaf path has the same number of black nodes.
func (t *redBlackTreeMap[K, V]) Verify() error {
	var errs errors.Collection

	t.verifyLinks(&errs)

	if t.root != nil && t.root.color != black {
		errs.Addf("%w: root %v is red", ErrBrokenInvariant, t.root)
	}

	verifyColors(t.root, &errs)

	return errs.GetError()
}

// verifyColors checks the red-black coloring of the subtree rooted at n and
// returns its black height, counting the nil leaves. Subtrees with unequal
// black heights are reported and the larger height is carried upward so that
// a single fault is reported once.
func verifyColors[K sortable.Sortable[K], V any](n *treeNode[K, V], errs *errors.Collection) int {
	if n == nil {
		return 1
	}

	if n.color == red {
		for _, child := range []*treeNode[K, V]{n.left, n.right} {
			if colorOf(child) == red {
				errs.Addf("%w: red node %v has red child %v", ErrBrokenInvariant, n, child)
			}
		}
	}

	leftHeight := verifyColors(n.left, errs)
	rightHeight := verifyColors(n.right, errs)

	if leftHeight != rightHeight {
		errs.Addf("%w: node %v has black height %d on the left and %d on the right",
			ErrBrokenInvariant, n, leftHeight, rightHeight)
	}

	height := max(leftHeight, rightHeight)
	if n.color == black {
		height++
	}

	return height
}
