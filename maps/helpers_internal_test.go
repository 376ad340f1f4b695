package maps

import (
	"strconv"
	"testing"

	"github.com/amp-labs/amp-trees/sortable"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type intTree = binaryTree[sortable.Int, string]

type intNode = treeNode[sortable.Int, string]

func newIntNode(key int) *intNode {
	return &intNode{key: sortable.Int(key)}
}

func newTestRedBlackTree(t *testing.T, keys ...int) *redBlackTreeMap[sortable.Int, string] {
	t.Helper()

	tree := NewRedBlackTreeMap[sortable.Int, string](WithName(t.Name())).(*redBlackTreeMap[sortable.Int, string]) //nolint:forcetypeassert,lll
	for _, key := range keys {
		tree.Put(sortable.Int(key), "")
	}

	return tree
}

func newTestSearchTree(t *testing.T, seed uint64, keys ...int) *searchTreeMap[sortable.Int, string] {
	t.Helper()

	tree := NewSearchTreeMap[sortable.Int, string](WithName(t.Name()), WithSeed(seed)).(*searchTreeMap[sortable.Int, string]) //nolint:forcetypeassert,lll
	for _, key := range keys {
		tree.Put(sortable.Int(key), "")
	}

	return tree
}

// preorder lists the keys of the subtree rooted at n, parents before children,
// which pins down the exact shape of the tree.
func preorder(n *intNode) []int {
	if n == nil {
		return nil
	}

	keys := []int{int(n.key)}
	keys = append(keys, preorder(n.left)...)

	return append(keys, preorder(n.right)...)
}

func fixupCount(t *testing.T, operation string, fixupCase int, side direction) float64 {
	t.Helper()

	return testutil.ToFloat64(fixupCasesTotal.WithLabelValues(
		t.Name(), operation, strconv.Itoa(fixupCase), side.String()))
}

func deletionCount(t *testing.T, kind string, s shape) float64 {
	t.Helper()

	return testutil.ToFloat64(deletionsTotal.WithLabelValues(t.Name(), kind, s.String()))
}

func rotationCount(t *testing.T, dir direction) float64 {
	t.Helper()

	return testutil.ToFloat64(rotationsTotal.WithLabelValues(t.Name(), dir.String()))
}
