package maps

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-trees/compare"
	"github.com/amp-labs/amp-trees/optional"
	"github.com/amp-labs/amp-trees/sortable"
	"github.com/amp-labs/amp-trees/zero"
)

// color is the color of a red-black tree node. The search tree never reads it.
type color bool

// direction names the side of a node relative to its parent.
type direction byte

const (
	// black is true so that a missing child, read through colorOf, and a
	// zero-valued node are both black. New red-black nodes are painted red explicitly.
	black, red color = true, false
)

const (
	left direction = iota
	right
)

// String returns a human-readable representation of the node color.
func (c color) String() string {
	switch c {
	case black:
		return "black"
	default:
		return "red"
	}
}

// String returns a human-readable representation of the direction.
func (d direction) String() string {
	switch d {
	case left:
		return "left"
	case right:
		return "right"
	default:
		return "not recognized"
	}
}

func (d direction) opposite() direction {
	if d == left {
		return right
	}

	return left
}

// treeNode is a single node of either tree. Each node stores a key-value
// pair, links to its children and its parent (nil at the root), and a color
// that only the red-black tree uses.
type treeNode[K sortable.Sortable[K], V any] struct {
	key    K
	value  V
	color  color
	left   *treeNode[K, V]
	right  *treeNode[K, V]
	parent *treeNode[K, V]
}

// String returns a string representation of the node showing its key and color.
func (n *treeNode[K, V]) String() string {
	return fmt.Sprintf("(%v : %s)", n.key, n.color)
}

func (n *treeNode[K, V]) child(d direction) *treeNode[K, V] {
	if d == left {
		return n.left
	}

	return n.right
}

// side reports whether n is the left or the right child of its parent.
// n must not be the root.
func (n *treeNode[K, V]) side() direction {
	if n == n.parent.left {
		return left
	}

	return right
}

// colorOf returns the color of n, treating a missing node as black.
func colorOf[K sortable.Sortable[K], V any](n *treeNode[K, V]) color {
	if n == nil {
		return black
	}

	return n.color
}

// minNode returns the leftmost node of the subtree rooted at n.
func minNode[K sortable.Sortable[K], V any](n *treeNode[K, V]) *treeNode[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// maxNode returns the rightmost node of the subtree rooted at n.
func maxNode[K sortable.Sortable[K], V any](n *treeNode[K, V]) *treeNode[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// predecessorNode returns the in-order predecessor of n, or nil if n holds the smallest key.
func predecessorNode[K sortable.Sortable[K], V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n.left != nil {
		return maxNode(n.left)
	}

	// Climb until we leave a right subtree.
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}

	return n.parent
}

// successorNode returns the in-order successor of n, or nil if n holds the largest key.
func successorNode[K sortable.Sortable[K], V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n.right != nil {
		return minNode(n.right)
	}

	// Climb until we leave a left subtree.
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}

	return n.parent
}

// binaryTree holds the state and the read-only operations shared by both
// trees. The trees embed it and add their own Put, Delete and Verify.
type binaryTree[K sortable.Sortable[K], V any] struct {
	root *treeNode[K, V]
	size int
	name string
	log  *slog.Logger
}

func newBinaryTree[K sortable.Sortable[K], V any](cfg config) binaryTree[K, V] {
	return binaryTree[K, V]{
		name: cfg.name,
		log:  cfg.log,
	}
}

// lookup searches for key. It returns the node holding the key, or nil
// together with the node under which the key would be attached and the side
// it would go on. The parent is nil when the tree is empty.
func (t *binaryTree[K, V]) lookup(key K) (node, parent *treeNode[K, V], dir direction) {
	node = t.root

	for node != nil {
		switch sortable.Compare(key, node.key) {
		case compare.Equal:
			return node, node.parent, dir
		case compare.Less:
			parent, dir, node = node, left, node.left
		default:
			parent, dir, node = node, right, node.right
		}
	}

	return nil, parent, dir
}

func (t *binaryTree[K, V]) search(key K) *treeNode[K, V] {
	node, _, _ := t.lookup(key)

	return node
}

// attach links a new node under parent on the given side, or makes it the
// root when parent is nil, and counts it.
func (t *binaryTree[K, V]) attach(parent *treeNode[K, V], dir direction, node *treeNode[K, V]) {
	node.parent = parent

	switch {
	case parent == nil:
		t.root = node
	case dir == left:
		parent.left = node
	default:
		parent.right = node
	}

	t.size++
}

// transplant replaces the subtree rooted at node u with the subtree rooted at node v.
// v may be nil, which unlinks u.
func (t *binaryTree[K, V]) transplant(u *treeNode[K, V], v *treeNode[K, V]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// release clears a node that has been unlinked from the tree so that it no
// longer keeps its neighbours, key or value reachable.
func release[K sortable.Sortable[K], V any](n *treeNode[K, V]) {
	n.left, n.right, n.parent = nil, nil, nil
	n.key = zero.Value[K]()
	n.value = zero.Value[V]()
}

// Get returns the value for key, or None if the key is absent.
func (t *binaryTree[K, V]) Get(key K) optional.Value[V] {
	node := t.search(key)
	if node == nil {
		return optional.None[V]()
	}

	return optional.Some(node.value)
}

// GetOrElse returns the value for key, or defaultValue if the key is absent.
func (t *binaryTree[K, V]) GetOrElse(key K, defaultValue V) V {
	node := t.search(key)
	if node == nil {
		return defaultValue
	}

	return node.value
}

// Contains reports whether key is present.
func (t *binaryTree[K, V]) Contains(key K) bool {
	return t.search(key) != nil
}

// Size returns the number of keys in the tree.
func (t *binaryTree[K, V]) Size() int {
	return t.size
}

// Clear drops every node. Detached nodes are left to the garbage collector.
func (t *binaryTree[K, V]) Clear() {
	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("clearing ordered map", "map", t.name, "size", t.size)
	}

	t.root = nil
	t.size = 0
}

// Min returns the smallest key, or None if the tree is empty.
func (t *binaryTree[K, V]) Min() optional.Value[K] {
	if t.root == nil {
		return optional.None[K]()
	}

	return optional.Some(minNode(t.root).key)
}

// Max returns the largest key, or None if the tree is empty.
func (t *binaryTree[K, V]) Max() optional.Value[K] {
	if t.root == nil {
		return optional.None[K]()
	}

	return optional.Some(maxNode(t.root).key)
}

// Predecessor returns the largest key smaller than key. It returns None if key
// is absent or has no smaller neighbour.
func (t *binaryTree[K, V]) Predecessor(key K) optional.Value[K] {
	return keyOf(t.neighbour(key, predecessorNode[K, V]))
}

// Successor returns the smallest key larger than key. It returns None if key
// is absent or has no larger neighbour.
func (t *binaryTree[K, V]) Successor(key K) optional.Value[K] {
	return keyOf(t.neighbour(key, successorNode[K, V]))
}

func (t *binaryTree[K, V]) neighbour(key K, step func(*treeNode[K, V]) *treeNode[K, V]) *treeNode[K, V] {
	node := t.search(key)
	if node == nil {
		return nil
	}

	return step(node)
}

func keyOf[K sortable.Sortable[K], V any](n *treeNode[K, V]) optional.Value[K] {
	if n == nil {
		return optional.None[K]()
	}

	return optional.Some(n.key)
}

// Seq returns an iterator over the entries in ascending key order.
func (t *binaryTree[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}

		for n := minNode(t.root); n != nil; n = successorNode(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries in descending key order.
func (t *binaryTree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}

		for n := maxNode(t.root); n != nil; n = predecessorNode(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (t *binaryTree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)

	for key := range t.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// ForEach calls f for every entry in ascending key order.
func (t *binaryTree[K, V]) ForEach(f func(key K, value V)) {
	for key, value := range t.Seq() {
		f(key, value)
	}
}

// Height returns the number of nodes on the longest root-to-leaf path. It
// walks the tree level by level so that a degenerate search tree cannot
// exhaust the stack.
func (t *binaryTree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*treeNode[K, V]{t.root}

	for len(level) > 0 {
		height++

		next := make([]*treeNode[K, V], 0, 2*len(level))

		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}

			if n.right != nil {
				next = append(next, n.right)
			}
		}

		level = next
	}

	return height
}
