package mining

import (
	"fmt"
	"sort"
)

// Entry pairs a canonical itemset with its raw transaction count.
// Counts stay integral everywhere inside the engine; support fractions
// are derived only at read time so equality comparisons never see
// floating-point drift.
type Entry struct {
	Set   Itemset
	Count int
}

// ItemsetSource is the read surface shared by the mined Collection and
// the reducer Views: a total transaction count plus a stable, sorted
// sequence of entries. Reporting code renders either interchangeably.
type ItemsetSource interface {
	Total() int
	Entries() []Entry
}

// Collection is the complete set of frequent itemsets produced by one
// mining run, partitioned by order. It is immutable once built; the
// closed/maximal reducers are pure functions over it.
type Collection struct {
	total  int
	levels [][]Entry
	index  map[string]int
}

// Total returns the number of transactions the collection was mined
// over. Support fractions are counts divided by this value.
func (c *Collection) Total() int {
	return c.total
}

// Len returns the number of frequent itemsets across all orders.
func (c *Collection) Len() int {
	n := 0
	for _, lvl := range c.levels {
		n += len(lvl)
	}
	return n
}

// MaxOrder returns the highest order with at least one frequent itemset,
// or 0 for an empty collection.
func (c *Collection) MaxOrder() int {
	return len(c.levels)
}

// Level returns the frequent itemsets of a given order (1-based), sorted
// canonically. The returned slice is shared; callers must not mutate it.
func (c *Collection) Level(order int) []Entry {
	if order < 1 || order > len(c.levels) {
		return nil
	}
	return c.levels[order-1]
}

// Entries returns all entries sorted by (order ascending, canonical
// itemset ascending). The slice is freshly allocated; the entries share
// the collection's itemsets.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, 0, c.Len())
	for _, lvl := range c.levels {
		out = append(out, lvl...)
	}
	return out
}

// Count returns the raw transaction count for an itemset and whether the
// itemset is frequent.
func (c *Collection) Count(set Itemset) (int, bool) {
	n, ok := c.index[set.Key()]
	return n, ok
}

// Support converts a raw count into a fraction of the transaction total.
// A collection mined over zero transactions reports zero support.
func (c *Collection) Support(count int) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(count) / float64(c.total)
}

// CollectionBuilder assembles a Collection level by level during mining.
// Build verifies downward closure before releasing the collection, so a
// miner bug can never leak an unsound lattice to callers.
type CollectionBuilder struct {
	total  int
	levels [][]Entry
	index  map[string]int
}

// NewCollectionBuilder starts a builder for a store of the given
// transaction total.
func NewCollectionBuilder(total int) *CollectionBuilder {
	return &CollectionBuilder{
		total: total,
		index: make(map[string]int),
	}
}

// AddLevel appends the next order's frequent entries. Entries are sorted
// canonically here; the caller passes ownership of the slice.
func (b *CollectionBuilder) AddLevel(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Set.Compare(entries[j].Set) < 0
	})
	b.levels = append(b.levels, entries)
	for _, e := range entries {
		b.index[e.Set.Key()] = e.Count
	}
}

// Build verifies the downward-closure invariant and returns the
// immutable collection. A violation returns ErrInconsistentLattice and
// no collection: aborting beats handing back a partially-correct result.
func (b *CollectionBuilder) Build() (*Collection, error) {
	for order := 2; order <= len(b.levels); order++ {
		for _, e := range b.levels[order-1] {
			for _, sub := range e.Set.Subsets() {
				subCount, ok := b.index[sub.Key()]
				if !ok {
					return nil, fmt.Errorf("order-%d subset of %v missing at order %d: %w",
						order-1, e.Set, order, ErrInconsistentLattice)
				}
				if subCount < e.Count {
					return nil, fmt.Errorf("subset %v has lower support than superset %v: %w",
						sub, e.Set, ErrInconsistentLattice)
				}
			}
		}
	}
	return &Collection{total: b.total, levels: b.levels, index: b.index}, nil
}

// View is an ordered, read-only selection of entries over the same
// transaction total as the collection it was derived from. The reducers
// return Views.
type View struct {
	total   int
	entries []Entry
}

// NewView sorts entries into the canonical (order, itemset) ordering and
// wraps them with the originating transaction total.
func NewView(total int, entries []Entry) *View {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Set, entries[j].Set
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a.Compare(b) < 0
	})
	return &View{total: total, entries: entries}
}

// Total returns the transaction total backing the view's supports.
func (v *View) Total() int {
	return v.total
}

// Len returns the number of entries in the view.
func (v *View) Len() int {
	return len(v.entries)
}

// Entries returns the ordered entries. Callers must not mutate them.
func (v *View) Entries() []Entry {
	return v.entries
}

// Support converts a raw count into a fraction of the transaction total.
func (v *View) Support(count int) float64 {
	if v.total == 0 {
		return 0
	}
	return float64(count) / float64(v.total)
}

// Contains reports whether the view holds the given itemset.
func (v *View) Contains(set Itemset) bool {
	for _, e := range v.entries {
		if e.Set.Equal(set) {
			return true
		}
	}
	return false
}
