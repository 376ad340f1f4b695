// Package comparisons benchmarks the trees of package maps against the third-party
// ordered and hashed maps they are commonly weighed against: google/btree,
// petar/GoLLRB, the gods red-black tree, and the concurrent hash maps haxmap and
// cornelk/hashmap.
//
// The package has no exported API. Run the benchmarks with
//
//	go test -bench . ./maps/comparisons
package comparisons
