// Package reduce derives the closed and maximal subsets of a mined
// frequent-itemset collection. Both reducers are pure functions over the
// immutable collection: no shared state, safe to run concurrently.
package reduce

import (
	"github.com/tbeaumont/lattice-miner/mining"
)

// Closed returns the frequent itemsets with no proper superset of
// identical support. Support equality is raw integer-count equality;
// fractions are never compared.
//
// Only immediate supersets need checking: if some larger superset shares
// X's count, every itemset between them is squeezed to the same count by
// antimonotonicity, so an order-(|X|+1) witness always exists. Each
// level is therefore scanned once, marking the equal-count subsets of
// its entries.
func Closed(fc *mining.Collection) *mining.View {
	nonClosed := make(map[string]bool)
	for order := 2; order <= fc.MaxOrder(); order++ {
		for _, e := range fc.Level(order) {
			for _, sub := range e.Set.Subsets() {
				if count, ok := fc.Count(sub); ok && count == e.Count {
					nonClosed[sub.Key()] = true
				}
			}
		}
	}

	var entries []mining.Entry
	for _, e := range fc.Entries() {
		if !nonClosed[e.Set.Key()] {
			entries = append(entries, e)
		}
	}
	return mining.NewView(fc.Total(), entries)
}

// closedNaive is the correctness baseline: for every itemset, scan all
// higher orders for an equal-support proper superset. Kept for the tests
// that pin the optimized reducer against it.
func closedNaive(fc *mining.Collection) *mining.View {
	all := fc.Entries()

	var entries []mining.Entry
	for _, x := range all {
		closed := true
		for _, y := range all {
			if y.Set.Order() > x.Set.Order() &&
				y.Count == x.Count &&
				x.Set.IsProperSubsetOf(y.Set) {
				closed = false
				break
			}
		}
		if closed {
			entries = append(entries, x)
		}
	}
	return mining.NewView(fc.Total(), entries)
}
