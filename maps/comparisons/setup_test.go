package comparisons

import (
	"math/rand/v2"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/amp-labs/amp-trees/maps"
	"github.com/amp-labs/amp-trees/sortable"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	benchmarkItemCount = 1 << 10
	btreeDegree        = 32
)

// shuffledKeys returns 0..benchmarkItemCount-1 in a fixed random order, so that
// the unbalanced tree sees a typical rather than a degenerate insertion order.
func shuffledKeys() []int {
	return rand.New(rand.NewPCG(1, 1)).Perm(benchmarkItemCount) //nolint:gosec // deterministic workload
}

func setupRedBlackTree(tb testing.TB, keys []int) maps.TreeMap[sortable.Int, int] {
	tb.Helper()

	m := maps.NewRedBlackTreeMap[sortable.Int, int](maps.WithName("benchmark"))
	for _, key := range keys {
		m.Put(sortable.Int(key), key)
	}

	return m
}

func setupSearchTree(tb testing.TB, keys []int) maps.TreeMap[sortable.Int, int] {
	tb.Helper()

	m := maps.NewSearchTreeMap[sortable.Int, int](maps.WithName("benchmark"), maps.WithSeed(1))
	for _, key := range keys {
		m.Put(sortable.Int(key), key)
	}

	return m
}

type btreeItem struct {
	key   int
	value int
}

func btreeLess(a, b btreeItem) bool {
	return a.key < b.key
}

func setupBTree(tb testing.TB, keys []int) *btree.BTreeG[btreeItem] {
	tb.Helper()

	m := btree.NewG(btreeDegree, btreeLess)
	for _, key := range keys {
		m.ReplaceOrInsert(btreeItem{key: key, value: key})
	}

	return m
}

func setupLLRB(tb testing.TB, keys []int) *llrb.LLRB {
	tb.Helper()

	m := llrb.New()
	for _, key := range keys {
		m.ReplaceOrInsert(llrb.Int(key))
	}

	return m
}

func setupGodsTree(tb testing.TB, keys []int) *redblacktree.Tree {
	tb.Helper()

	m := redblacktree.NewWithIntComparator()
	for _, key := range keys {
		m.Put(key, key)
	}

	return m
}

func setupHaxMap(tb testing.TB, keys []int) *haxmap.Map[int, int] {
	tb.Helper()

	m := haxmap.New[int, int]()
	for _, key := range keys {
		m.Set(key, key)
	}

	return m
}

func setupHashMap(tb testing.TB, keys []int) *hashmap.Map[int, int] {
	tb.Helper()

	m := hashmap.New[int, int]()
	for _, key := range keys {
		m.Set(key, key)
	}

	return m
}
