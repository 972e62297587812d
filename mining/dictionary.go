package mining

import (
	"fmt"
	"sort"
)

// Dictionary maps item names to compact codes and back. Codes are
// assigned in sorted-name order so that canonical itemset order equals
// lexicographic name order, which keeps rendered output stable across
// runs regardless of load order.
type Dictionary struct {
	names []string
	codes map[string]Item
}

// NewDictionary builds a dictionary over a fixed item universe.
// Duplicate names are collapsed.
func NewDictionary(names []string) *Dictionary {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	d := &Dictionary{
		names: make([]string, 0, len(sorted)),
		codes: make(map[string]Item, len(sorted)),
	}
	for _, name := range sorted {
		if _, ok := d.codes[name]; ok {
			continue
		}
		d.codes[name] = Item(len(d.names))
		d.names = append(d.names, name)
	}
	return d
}

// Size returns the number of items in the universe.
func (d *Dictionary) Size() int {
	return len(d.names)
}

// Code resolves an item name to its code. The second return is false if
// the name is outside the universe.
func (d *Dictionary) Code(name string) (Item, bool) {
	code, ok := d.codes[name]
	return code, ok
}

// MustCode resolves a name or returns ErrUnknownItem wrapped with the
// offending name. Used by store loaders to fail fast on bad data.
func (d *Dictionary) MustCode(name string) (Item, error) {
	code, ok := d.codes[name]
	if !ok {
		return 0, fmt.Errorf("item %q: %w", name, ErrUnknownItem)
	}
	return code, nil
}

// Name resolves a code back to its item name. Codes outside the universe
// render as a placeholder rather than panicking; they can only come from
// corrupted storage.
func (d *Dictionary) Name(code Item) string {
	if int(code) < 0 || int(code) >= len(d.names) {
		return fmt.Sprintf("item#%d", code)
	}
	return d.names[code]
}

// Names returns the full universe in code order (which is sorted name
// order).
func (d *Dictionary) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}
