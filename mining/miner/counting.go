package miner

import (
	"fmt"
	"sync"

	"github.com/tbeaumont/lattice-miner/mining"
	"github.com/tbeaumont/lattice-miner/mining/store"
)

// countCandidates counts, for every candidate, the number of
// transactions that contain it, scanning the store once per worker.
// Results align with the candidates slice by index.
func countCandidates(s store.Store, candidates []mining.Itemset, workers int) ([]int, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers <= 1 {
		return countPartition(s, candidates)
	}

	// Partition candidates across workers; each scans the full store
	// read-only. Workers join before the level completes, so the next
	// generation step never observes partial counts.
	counts := make([]int, len(candidates))
	errs := make([]error, workers)
	chunk := (len(candidates) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(candidates) {
			hi = len(candidates)
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			part, err := countPartition(s, candidates[lo:hi])
			if err != nil {
				errs[w] = err
				return
			}
			copy(counts[lo:hi], part)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// countPartition scans the store once and counts each candidate in the
// partition. A transaction contains a candidate iff the candidate is a
// subset of the transaction's item set.
func countPartition(s store.Store, candidates []mining.Itemset) ([]int, error) {
	it, err := s.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan store: %w", err)
	}
	defer it.Close()

	counts := make([]int, len(candidates))
	for it.Next() {
		tx, err := it.Transaction()
		if err != nil {
			return nil, fmt.Errorf("failed to read transaction: %w", err)
		}
		for i, cand := range candidates {
			if cand.IsSubsetOf(tx) {
				counts[i]++
			}
		}
	}
	return counts, nil
}

// countSingletons tallies every item's transaction count in one scan.
func countSingletons(s store.Store) ([]int, error) {
	it, err := s.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan store: %w", err)
	}
	defer it.Close()

	counts := make([]int, s.Dictionary().Size())
	for it.Next() {
		tx, err := it.Transaction()
		if err != nil {
			return nil, fmt.Errorf("failed to read transaction: %w", err)
		}
		for _, item := range tx {
			counts[item]++
		}
	}
	return counts, nil
}
