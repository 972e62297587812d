package miner

import (
	"github.com/tbeaumont/lattice-miner/mining"
)

// generateCandidates performs the Apriori-gen step: join pairs of
// frequent order-k itemsets sharing a (k-1)-prefix into order-(k+1)
// candidates, then discard any candidate with an infrequent order-k
// subset before it is ever counted. The subset prune is a correctness
// requirement of the level-wise search, not an optimization.
//
// The level slice must be in canonical order (the collection builder
// guarantees this), which makes prefix groups contiguous.
func generateCandidates(level []mining.Entry) (candidates []mining.Itemset, pruned int) {
	frequent := make(map[string]bool, len(level))
	for _, e := range level {
		frequent[e.Set.Key()] = true
	}

	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i].Set, level[j].Set
			if !a.SharesPrefix(b) {
				break // canonical order keeps prefix groups contiguous
			}
			cand := a.Join(b)
			if hasInfrequentSubset(cand, frequent) {
				pruned++
				continue
			}
			candidates = append(candidates, cand)
		}
	}
	return candidates, pruned
}

// hasInfrequentSubset checks every order-(k-1) subset of an order-k
// candidate against the frequent set of the level below.
func hasInfrequentSubset(cand mining.Itemset, frequent map[string]bool) bool {
	for _, sub := range cand.Subsets() {
		if !frequent[sub.Key()] {
			return true
		}
	}
	return false
}
