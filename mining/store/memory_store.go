package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tbeaumont/lattice-miner/mining"
)

// MemoryStore keeps all transactions in memory as canonical itemsets.
// It is the default store for CSV-loaded and generated data.
type MemoryStore struct {
	dict *mining.Dictionary
	txs  []mining.Itemset
}

// NewMemoryStore creates an empty store over a fixed item universe.
func NewMemoryStore(dict *mining.Dictionary) *MemoryStore {
	return &MemoryStore{dict: dict}
}

// Append validates and adds one transaction given as item names.
// Duplicate names within a transaction collapse to one item; a name
// outside the universe returns ErrUnknownItem and leaves the store
// unchanged.
func (s *MemoryStore) Append(names ...string) error {
	items := make([]mining.Item, 0, len(names))
	for _, name := range names {
		code, err := s.dict.MustCode(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("transaction %d: %w", len(s.txs), err)
		}
		items = append(items, code)
	}
	s.txs = append(s.txs, mining.NewItemset(items...))
	return nil
}

// AppendItems adds one transaction given as item codes. Codes are
// canonicalized; codes outside the universe return ErrUnknownItem.
func (s *MemoryStore) AppendItems(items ...mining.Item) error {
	for _, it := range items {
		if int(it) < 0 || int(it) >= s.dict.Size() {
			return fmt.Errorf("transaction %d: code %d: %w", len(s.txs), it, mining.ErrUnknownItem)
		}
	}
	s.txs = append(s.txs, mining.NewItemset(items...))
	return nil
}

// Len reports the total transaction count.
func (s *MemoryStore) Len() int {
	return len(s.txs)
}

// Dictionary returns the item universe.
func (s *MemoryStore) Dictionary() *mining.Dictionary {
	return s.dict
}

// Transaction returns the i-th transaction in load order.
func (s *MemoryStore) Transaction(i int) mining.Itemset {
	return s.txs[i]
}

// Scan returns an iterator over transactions in load order.
func (s *MemoryStore) Scan() (Iterator, error) {
	return &memoryIterator{txs: s.txs, pos: -1}, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// OneHot returns the boolean item-presence matrix: one row per
// transaction, one column per item code. A pure format-conversion view
// for consumers that want basket-encoded data.
func (s *MemoryStore) OneHot() [][]bool {
	rows := make([][]bool, len(s.txs))
	for i, tx := range s.txs {
		row := make([]bool, s.dict.Size())
		for _, it := range tx {
			row[it] = true
		}
		rows[i] = row
	}
	return rows
}

type memoryIterator struct {
	txs []mining.Itemset
	pos int
}

func (i *memoryIterator) Next() bool {
	i.pos++
	return i.pos < len(i.txs)
}

func (i *memoryIterator) Transaction() (mining.Itemset, error) {
	return i.txs[i.pos], nil
}

func (i *memoryIterator) Close() error {
	return nil
}

// LoadBasketCSV reads basket-format CSV: one row per transaction, each
// field an item name, rows may have varying lengths. With a nil dict the
// universe is inferred from the data in a first pass; with an explicit
// dict any out-of-universe name is ErrUnknownItem.
func LoadBasketCSV(r io.Reader, dict *mining.Dictionary) (*MemoryStore, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // baskets have ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read basket csv: %w", err)
	}

	if dict == nil {
		var names []string
		for _, rec := range records {
			for _, f := range rec {
				if f = strings.TrimSpace(f); f != "" {
					names = append(names, f)
				}
			}
		}
		dict = mining.NewDictionary(names)
	}

	s := NewMemoryStore(dict)
	for _, rec := range records {
		fields := rec[:0]
		for _, f := range rec {
			if strings.TrimSpace(f) != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) == 0 {
			continue // blank line, not a transaction
		}
		if err := s.Append(fields...); err != nil {
			return nil, err
		}
	}
	return s, nil
}
