package maps

import (
	"strconv"

	"github.com/amp-labs/amp-trees/sortable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rotationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_map_rotations_total",
		Help: "The total number of tree rotations by map and rotation direction",
	}, []string{"map", "direction"})

	fixupCasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_map_fixup_cases_total",
		Help: "The total number of red-black fix-up cases taken by map, operation, case and side",
	}, []string{"map", "operation", "case", "side"})

	deletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_map_deletions_total",
		Help: "The total number of deleted keys by map, tree kind and the shape of the deleted node",
	}, []string{"map", "kind", "shape"})

	replacementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ordered_map_replacements_total",
		Help: "The total number of two-child search tree deletions by the replacement chosen",
	}, []string{"map", "choice"})
)

const (
	kindSearchTree   = "search_tree"
	kindRedBlackTree = "red_black_tree"

	operationInsert = "insert"
	operationDelete = "delete"

	choicePredecessor = "predecessor"
	choiceSuccessor   = "successor"
)

// shape classifies a node by how many children it has when it is deleted.
type shape byte

const (
	leaf shape = iota
	oneChild
	twoChildren
)

// String returns the metric label of the shape.
func (s shape) String() string {
	switch s {
	case leaf:
		return "leaf"
	case oneChild:
		return "one_child"
	case twoChildren:
		return "two_children"
	default:
		return "not recognized"
	}
}

func shapeOf[K sortable.Sortable[K], V any](n *treeNode[K, V]) shape {
	switch {
	case n.left != nil && n.right != nil:
		return twoChildren
	case n.left != nil || n.right != nil:
		return oneChild
	default:
		return leaf
	}
}

// deletionCounters holds the resolved deletion counters of one tree, indexed by shape.
type deletionCounters [3]prometheus.Counter

func newDeletionCounters(name, kind string) deletionCounters {
	var counters deletionCounters

	for s := leaf; s <= twoChildren; s++ {
		counters[s] = deletionsTotal.WithLabelValues(name, kind, s.String())
	}

	return counters
}

// balanceCounters holds the resolved rotation and fix-up counters of a red-black tree.
type balanceCounters struct {
	rotations   [2]prometheus.Counter
	insertCases [3][2]prometheus.Counter
	deleteCases [4][2]prometheus.Counter
}

func newBalanceCounters(name string) *balanceCounters {
	counters := &balanceCounters{}

	for _, side := range []direction{left, right} {
		counters.rotations[side] = rotationsTotal.WithLabelValues(name, side.String())

		for c := range counters.insertCases {
			counters.insertCases[c][side] = fixupCasesTotal.WithLabelValues(
				name, operationInsert, strconv.Itoa(c+1), side.String())
		}

		for c := range counters.deleteCases {
			counters.deleteCases[c][side] = fixupCasesTotal.WithLabelValues(
				name, operationDelete, strconv.Itoa(c+1), side.String())
		}
	}

	return counters
}

// replacementCounters holds the resolved replacement choice counters of a search tree.
type replacementCounters struct {
	predecessor prometheus.Counter
	successor   prometheus.Counter
}

func newReplacementCounters(name string) replacementCounters {
	return replacementCounters{
		predecessor: replacementsTotal.WithLabelValues(name, choicePredecessor),
		successor:   replacementsTotal.WithLabelValues(name, choiceSuccessor),
	}
}
