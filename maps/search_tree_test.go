package maps

import (
	"testing"

	"github.com/amp-labs/amp-trees/sortable"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTreeShape(t *testing.T) {
	t.Parallel()

	t.Run("follows insertion order", func(t *testing.T) {
		t.Parallel()

		tree := newTestSearchTree(t, 1, 50, 30, 70, 20, 40, 60, 80)

		assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, preorder(tree.root))
		assert.Equal(t, 3, tree.Height())
	})

	t.Run("degenerates for sorted keys", func(t *testing.T) {
		t.Parallel()

		keys := make([]int, 100)
		for i := range keys {
			keys[i] = i
		}

		tree := newTestSearchTree(t, 1, keys...)

		assert.Equal(t, 100, tree.Height())
		assert.Equal(t, keys, preorder(tree.root))
		require.NoError(t, tree.Verify())
	})
}

func TestSearchTreeDeletionShapes(t *testing.T) {
	t.Parallel()

	tree := newTestSearchTree(t, 1, 50, 30, 70, 20, 40, 60, 80)

	t.Run("leaf", func(t *testing.T) { //nolint:paralleltest // steps share one tree
		tree.Delete(20)

		assert.Equal(t, []int{50, 30, 40, 70, 60, 80}, preorder(tree.root))
		require.NoError(t, tree.Verify())
	})

	t.Run("one child", func(t *testing.T) { //nolint:paralleltest // steps share one tree
		tree.Delete(30)

		assert.Same(t, tree.root, tree.root.left.parent)
		assert.Equal(t, []int{50, 40, 70, 60, 80}, preorder(tree.root))
		require.NoError(t, tree.Verify())
	})

	t.Run("two children", func(t *testing.T) { //nolint:paralleltest // steps share one tree
		tree.Delete(50)

		switch tree.root.key {
		case 40:
			assert.Equal(t, []int{40, 70, 60, 80}, preorder(tree.root))
		case 60:
			assert.Equal(t, []int{60, 40, 70, 80}, preorder(tree.root))
		default:
			assert.Failf(t, "unexpected replacement", "root is %v", tree.root.key)
		}

		require.NoError(t, tree.Verify())
	})

	assert.InDelta(t, 1, deletionCount(t, kindSearchTree, leaf), 0)
	assert.InDelta(t, 1, deletionCount(t, kindSearchTree, oneChild), 0)
	assert.InDelta(t, 1, deletionCount(t, kindSearchTree, twoChildren), 0)

	predecessors := testutil.ToFloat64(replacementsTotal.WithLabelValues(t.Name(), choicePredecessor))
	successors := testutil.ToFloat64(replacementsTotal.WithLabelValues(t.Name(), choiceSuccessor))

	assert.InDelta(t, 1, predecessors+successors, 0)

	if predecessors == 1 {
		assert.Equal(t, sortable.Int(40), tree.root.key)
	} else {
		assert.Equal(t, sortable.Int(60), tree.root.key)
	}

	assert.Equal(t, 4, tree.Size())
}

func TestSearchTreeReplacementChoice(t *testing.T) {
	t.Parallel()

	t.Run("is reproducible with a fixed seed", func(t *testing.T) {
		t.Parallel()

		shapes := make([][]int, 2)

		for i := range shapes {
			tree := newTestSearchTree(t, 99, 50, 25, 75, 12, 37, 62, 87, 6, 18, 31, 43, 56, 68, 81, 93)
			for _, key := range []int{50, 25, 75, 37, 62} {
				tree.Delete(sortable.Int(key))
				require.NoError(t, tree.Verify())
			}

			shapes[i] = preorder(tree.root)
		}

		assert.Equal(t, shapes[0], shapes[1])
	})

	t.Run("picks both sides", func(t *testing.T) {
		t.Parallel()

		const rounds = 1000

		tree := newTestSearchTree(t, 5)

		for range rounds {
			tree.Put(2, "")
			tree.Put(1, "")
			tree.Put(3, "")
			tree.Delete(2)
			require.Equal(t, 2, tree.Size())
			tree.Clear()
		}

		predecessors := testutil.ToFloat64(replacementsTotal.WithLabelValues(t.Name(), choicePredecessor))
		successors := testutil.ToFloat64(replacementsTotal.WithLabelValues(t.Name(), choiceSuccessor))

		assert.InDelta(t, rounds, predecessors+successors, 0)
		assert.InDelta(t, rounds/2, predecessors, rounds/10)
	})
}
