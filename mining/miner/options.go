package miner

import (
	"github.com/tbeaumont/lattice-miner/mining/annotations"
)

// Options configures a mining run.
type Options struct {
	// MinSupport is the minimum support threshold as a fraction in (0,1].
	// An itemset is frequent when its transaction count divided by the
	// store's total meets or exceeds this value.
	MinSupport float64

	// MaxOrder caps the search depth. 0 means unbounded; the search then
	// terminates only when no candidates survive.
	MaxOrder int

	// Workers sets the number of goroutines counting candidate support
	// within a level. 0 or 1 counts sequentially. Workers partition the
	// candidate list and each scans the full store read-only; levels
	// always synchronize before the next generation step.
	Workers int

	// Handler receives progress annotations. Nil disables them.
	Handler annotations.Handler
}

// DefaultOptions returns a sequential, unbounded-depth configuration for
// the given threshold.
func DefaultOptions(minSupport float64) Options {
	return Options{MinSupport: minSupport}
}
