package maps_test

import (
	"fmt"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-trees/maps"
	"github.com/amp-labs/amp-trees/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreadSafeOrderedMap(t *testing.T) {
	t.Parallel()

	t.Run("wraps existing tree", func(t *testing.T) {
		t.Parallel()

		safe := maps.NewThreadSafeOrderedMap(maps.NewRedBlackTreeMap[sortable.Int, string]())
		require.NotNil(t, safe)
		assert.Equal(t, 0, safe.Size())
	})

	t.Run("returns nil when given nil map", func(t *testing.T) {
		t.Parallel()

		var tree maps.TreeMap[sortable.Int, string]

		assert.Nil(t, maps.NewThreadSafeOrderedMap(tree))
	})

	t.Run("returns existing thread-safe map as-is", func(t *testing.T) {
		t.Parallel()

		tsm1 := maps.NewThreadSafeOrderedMap(maps.NewSearchTreeMap[sortable.Int, string]())
		tsm2 := maps.NewThreadSafeOrderedMap(tsm1)

		// Should be the same instance, not double-wrapped
		assert.Equal(t, fmt.Sprintf("%p", tsm1), fmt.Sprintf("%p", tsm2))
	})
}

func TestThreadSafeOrderedMapSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("iteration may modify the map", func(t *testing.T) {
		t.Parallel()

		safe := maps.NewThreadSafeOrderedMap(maps.NewRedBlackTreeMap[sortable.Int, int](maps.WithName(t.Name())))
		for i := range 10 {
			safe.Put(sortable.Int(i), i)
		}

		var seen []sortable.Int

		for key := range safe.Seq() {
			seen = append(seen, key)
			safe.Delete(key)
		}

		assert.Len(t, seen, 10)
		assert.Equal(t, 0, safe.Size())
	})

	t.Run("backward sees the snapshot in reverse", func(t *testing.T) {
		t.Parallel()

		safe := maps.NewThreadSafeOrderedMap(maps.NewSearchTreeMap[sortable.Int, int](maps.WithName(t.Name())))
		for _, key := range []int{2, 3, 1} {
			safe.Put(sortable.Int(key), key)
		}

		backward := safe.Backward()
		safe.Put(4, 4)

		var seen []sortable.Int
		for key := range backward {
			seen = append(seen, key)
		}

		assert.Equal(t, []sortable.Int{3, 2, 1}, seen)
	})

	t.Run("for each may modify the map", func(t *testing.T) {
		t.Parallel()

		safe := maps.NewThreadSafeOrderedMap(maps.NewRedBlackTreeMap[sortable.Int, int](maps.WithName(t.Name())))
		safe.Put(1, 1)
		safe.Put(2, 2)

		safe.ForEach(func(key sortable.Int, value int) {
			safe.Put(key, value*10)
		})

		assert.Equal(t, 10, safe.Get(1).GetOrPanic())
		assert.Equal(t, 20, safe.Get(2).GetOrPanic())
	})
}

func TestThreadSafeOrderedMapConcurrentAccess(t *testing.T) {
	t.Parallel()

	const (
		writers      = 8
		perGoroutine = 500
	)

	safe := maps.NewThreadSafeOrderedMap(maps.NewRedBlackTreeMap[sortable.Int, int](maps.WithName(t.Name())))

	pool := pond.NewPool(2 * writers)

	for w := range writers {
		pool.Submit(func() {
			for i := range perGoroutine {
				key := sortable.Int(w*perGoroutine + i)
				safe.Put(key, i)

				if i%2 == 0 {
					safe.Delete(key)
				}
			}
		})

		pool.Submit(func() {
			for i := range perGoroutine {
				_ = safe.Contains(sortable.Int(i))
				_ = safe.Min()
				_ = safe.Successor(sortable.Int(i))

				if i%100 == 0 {
					for range safe.Seq() { //nolint:revive // draining the snapshot
					}
				}
			}
		})
	}

	pool.StopAndWait()

	require.NoError(t, safe.Verify())
	assert.Equal(t, writers*perGoroutine/2, safe.Size())
	assert.Len(t, safe.Keys(), safe.Size())
	assert.LessOrEqual(t, safe.Height(), heightBound(safe.Size()))
}
