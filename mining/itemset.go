package mining

import (
	"sort"
	"strings"
)

// Item is a compact code for a single item in the universe.
// Codes are assigned by the Dictionary in sorted-name order, so the
// natural ordering of codes matches the lexicographic ordering of names.
type Item int32

// Itemset is a set of distinct items in canonical form: a strictly
// ascending slice of item codes. All comparison operations assume (and
// all constructors guarantee) this canonical representation, which makes
// equality, subset tests and the Apriori prefix join well-defined
// without relying on any set abstraction.
type Itemset []Item

// NewItemset builds a canonical itemset from items in any order,
// collapsing duplicates.
func NewItemset(items ...Item) Itemset {
	if len(items) == 0 {
		return nil
	}
	set := make(Itemset, len(items))
	copy(set, items)
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })

	// Deduplicate in place
	out := set[:1]
	for _, it := range set[1:] {
		if it != out[len(out)-1] {
			out = append(out, it)
		}
	}
	return out
}

// Order returns the number of items in the set (the "k" of a k-itemset).
func (s Itemset) Order() int {
	return len(s)
}

// Equal reports whether two canonical itemsets contain the same items.
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i, it := range s {
		if it != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the set contains a single item.
func (s Itemset) Contains(item Item) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= item })
	return i < len(s) && s[i] == item
}

// IsSubsetOf reports whether every item of s is present in other.
// Both sets must be canonical; the test is a single merge pass.
func (s Itemset) IsSubsetOf(other Itemset) bool {
	if len(s) > len(other) {
		return false
	}
	j := 0
	for _, it := range s {
		for j < len(other) && other[j] < it {
			j++
		}
		if j >= len(other) || other[j] != it {
			return false
		}
		j++
	}
	return true
}

// IsProperSubsetOf reports whether s is a subset of other and strictly
// smaller than it.
func (s Itemset) IsProperSubsetOf(other Itemset) bool {
	return len(s) < len(other) && s.IsSubsetOf(other)
}

// Compare orders two canonical itemsets lexicographically by item code.
// Returns -1, 0 or 1. Used for the stable (order, itemset) iteration
// ordering of mined collections.
func (s Itemset) Compare(other Itemset) int {
	n := len(s)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	switch {
	case len(s) < len(other):
		return -1
	case len(s) > len(other):
		return 1
	}
	return 0
}

// SharesPrefix reports whether two order-k itemsets agree on their first
// k-1 items. This is the join condition of Apriori candidate generation.
func (s Itemset) SharesPrefix(other Itemset) bool {
	if len(s) != len(other) || len(s) == 0 {
		return false
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Join merges two order-k itemsets that share a (k-1)-prefix into one
// order-(k+1) candidate. The caller must have checked SharesPrefix; the
// result is canonical because the two differing last items are ordered.
func (s Itemset) Join(other Itemset) Itemset {
	out := make(Itemset, len(s)+1)
	copy(out, s)
	last := other[len(other)-1]
	if last > s[len(s)-1] {
		out[len(s)] = last
	} else {
		out[len(s)] = s[len(s)-1]
		out[len(s)-1] = last
	}
	return out
}

// Subsets returns the order-(k-1) subsets of an order-k itemset, each
// produced by dropping one item. Results are canonical.
func (s Itemset) Subsets() []Itemset {
	if len(s) <= 1 {
		return nil
	}
	subs := make([]Itemset, 0, len(s))
	for drop := range s {
		sub := make(Itemset, 0, len(s)-1)
		for i, it := range s {
			if i != drop {
				sub = append(sub, it)
			}
		}
		subs = append(subs, sub)
	}
	return subs
}

// Key returns a compact string usable as a map key. The encoding is
// private to the package; use Names for anything human-readable.
func (s Itemset) Key() string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, it := range s {
		b.WriteByte(byte(it >> 24))
		b.WriteByte(byte(it >> 16))
		b.WriteByte(byte(it >> 8))
		b.WriteByte(byte(it))
	}
	return b.String()
}

// Names renders the itemset as the deterministic human-readable form:
// item names joined by commas, in canonical order.
func (s Itemset) Names(dict *Dictionary) string {
	names := make([]string, len(s))
	for i, it := range s {
		names[i] = dict.Name(it)
	}
	return strings.Join(names, ",")
}
