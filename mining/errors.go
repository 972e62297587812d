package mining

import "errors"

var (
	// ErrInvalidThreshold indicates a minimum-support value outside (0,1].
	// Rejected before any mining starts.
	ErrInvalidThreshold = errors.New("mining: minimum support must be in (0,1]")

	// ErrUnknownItem indicates a transaction referencing an item outside
	// the declared universe. Raised at load time; mining never starts on
	// invalid data.
	ErrUnknownItem = errors.New("mining: item not in universe")

	// ErrInconsistentLattice indicates a downward-closure violation in a
	// mined collection: a frequent itemset whose subset is missing from a
	// lower level. This is an implementation bug, fatal and never
	// silently repaired.
	ErrInconsistentLattice = errors.New("mining: frequent-itemset lattice is inconsistent")
)
