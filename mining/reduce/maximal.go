package reduce

import (
	"github.com/tbeaumont/lattice-miner/mining"
)

// Maximal returns the frequent itemsets with no frequent proper superset
// at all; support is irrelevant. The result is always a subset of what
// Closed returns, since an itemset without supersets trivially has no
// equal-support superset.
//
// Downward closure reduces the check to immediate supersets: any
// frequent superset of X implies a frequent order-(|X|+1) superset, so
// marking each level's subsets from the level above suffices.
func Maximal(fc *mining.Collection) *mining.View {
	nonMaximal := make(map[string]bool)
	for order := 2; order <= fc.MaxOrder(); order++ {
		for _, e := range fc.Level(order) {
			for _, sub := range e.Set.Subsets() {
				nonMaximal[sub.Key()] = true
			}
		}
	}

	var entries []mining.Entry
	for _, e := range fc.Entries() {
		if !nonMaximal[e.Set.Key()] {
			entries = append(entries, e)
		}
	}
	return mining.NewView(fc.Total(), entries)
}

// maximalNaive is the correctness baseline: exhaustive proper-superset
// scan against the full collection.
func maximalNaive(fc *mining.Collection) *mining.View {
	all := fc.Entries()

	var entries []mining.Entry
	for _, x := range all {
		maximal := true
		for _, y := range all {
			if x.Set.IsProperSubsetOf(y.Set) {
				maximal = false
				break
			}
		}
		if maximal {
			entries = append(entries, x)
		}
	}
	return mining.NewView(fc.Total(), entries)
}
