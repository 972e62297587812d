// Package miner implements the level-wise Apriori search over a
// transaction store: singleton counting, prefix-join candidate
// generation with downward-closure pruning, and per-level support
// counting against a minimum-support threshold.
package miner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tbeaumont/lattice-miner/mining"
	"github.com/tbeaumont/lattice-miner/mining/annotations"
	"github.com/tbeaumont/lattice-miner/mining/store"
)

// Mine runs the Apriori search and returns the complete frequent-itemset
// collection. An empty collection is a valid terminal state, not an
// error. The context is checked at level boundaries only; a mid-scan
// abort would leave a level half-counted.
func Mine(ctx context.Context, s store.Store, opts Options) (*mining.Collection, error) {
	if opts.MinSupport <= 0 || opts.MinSupport > 1 {
		return nil, fmt.Errorf("got %v: %w", opts.MinSupport, mining.ErrInvalidThreshold)
	}

	total := s.Len()
	builder := mining.NewCollectionBuilder(total)

	// Smallest integer count satisfying count/total >= MinSupport.
	// Comparisons from here on are pure integer comparisons.
	minCount := int(math.Ceil(opts.MinSupport * float64(total)))

	runStart := time.Now()
	opts.Handler.Emit(annotations.MineBegin, map[string]interface{}{
		"transactions": total,
		"minSupport":   opts.MinSupport,
	})

	level, err := mineSingletons(s, minCount)
	if err != nil {
		return failed(opts.Handler, runStart, err)
	}

	for order := 1; len(level) > 0; order++ {
		// AddLevel sorts the slice in place, so the generation step below
		// sees the level in canonical order.
		builder.AddLevel(level)

		if opts.MaxOrder > 0 && order >= opts.MaxOrder {
			break
		}
		// Abort point between levels.
		select {
		case <-ctx.Done():
			return failed(opts.Handler, runStart, ctx.Err())
		default:
		}

		level, err = mineNextLevel(s, level, order+1, minCount, opts)
		if err != nil {
			return failed(opts.Handler, runStart, err)
		}
	}

	collection, err := builder.Build()
	if err != nil {
		return failed(opts.Handler, runStart, err)
	}

	opts.Handler.Timed(annotations.MineComplete, runStart, map[string]interface{}{
		"success":  true,
		"itemsets": collection.Len(),
		"levels":   collection.MaxOrder(),
	})
	return collection, nil
}

// mineSingletons computes the frequent-1 level.
func mineSingletons(s store.Store, minCount int) ([]mining.Entry, error) {
	counts, err := countSingletons(s)
	if err != nil {
		return nil, err
	}

	var level []mining.Entry
	for code, count := range counts {
		if count >= minCount && count > 0 {
			level = append(level, mining.Entry{
				Set:   mining.Itemset{mining.Item(code)},
				Count: count,
			})
		}
	}
	return level, nil
}

// mineNextLevel generates, counts and filters the candidates of the next
// order from the frequent level below.
func mineNextLevel(s store.Store, prev []mining.Entry, order, minCount int, opts Options) ([]mining.Entry, error) {
	genStart := time.Now()
	candidates, pruned := generateCandidates(prev)
	opts.Handler.Timed(annotations.CandidatesGenerated, genStart, map[string]interface{}{
		"level":      order,
		"candidates": len(candidates),
	})
	if pruned > 0 {
		opts.Handler.Emit(annotations.CandidatesPruned, map[string]interface{}{
			"pruned": pruned,
		})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	levelStart := time.Now()
	opts.Handler.Emit(annotations.LevelBegin, map[string]interface{}{
		"level":      order,
		"candidates": len(candidates),
	})

	counts, err := countCandidates(s, candidates, opts.Workers)
	if err != nil {
		return nil, err
	}

	var level []mining.Entry
	for i, count := range counts {
		if count >= minCount {
			level = append(level, mining.Entry{Set: candidates[i], Count: count})
		}
	}

	opts.Handler.Timed(annotations.LevelComplete, levelStart, map[string]interface{}{
		"level":    order,
		"frequent": len(level),
	})
	return level, nil
}

func failed(h annotations.Handler, start time.Time, err error) (*mining.Collection, error) {
	h.Timed(annotations.MineComplete, start, map[string]interface{}{
		"success": false,
		"error":   err,
	})
	return nil, err
}
