package maps

import "github.com/amp-labs/amp-trees/assert"

// rotateLeft performs a left rotation around the pivot x. Its right child y
// takes its place and x becomes the left child of y:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// The pivot must have a right child. The tree root is updated when x was the root.
//
//nolint:varnamelen // Standard red-black tree variable names
func (t *binaryTree[K, V]) rotateLeft(x *treeNode[K, V]) {
	assert.True(x != nil, "rotateLeft: nil pivot")
	assert.True(x.right != nil, "rotateLeft: pivot %v has no right child", x)

	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	t.transplant(x, y)

	y.left = x
	x.parent = y
}

// rotateRight performs a right rotation around the pivot y. Its left child x
// takes its place and y becomes the right child of x:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// The pivot must have a left child. The tree root is updated when y was the root.
//
//nolint:dupword,varnamelen // ASCII art; standard red-black tree variable names
func (t *binaryTree[K, V]) rotateRight(y *treeNode[K, V]) {
	assert.True(y != nil, "rotateRight: nil pivot")
	assert.True(y.left != nil, "rotateRight: pivot %v has no left child", y)

	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	t.transplant(y, x)

	x.right = y
	y.parent = x
}

// rotate turns the pivot down toward dir: a left rotation for left, a right
// rotation for right. The fix-ups use it to share one body for both mirror images.
func (t *binaryTree[K, V]) rotate(pivot *treeNode[K, V], dir direction) {
	if dir == left {
		t.rotateLeft(pivot)
	} else {
		t.rotateRight(pivot)
	}
}
