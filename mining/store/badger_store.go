package store

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/tbeaumont/lattice-miner/mining"
)

// Key layout:
//
//	t<u32 index> -> encoded transaction
//	m:dict       -> encoded dictionary
//
// Transaction keys are big-endian so a prefix scan yields load order.
var (
	txPrefix = []byte("t")
	dictKey  = []byte("m:dict")
)

// BadgerStore is a persistent transaction store on BadgerDB. Datasets
// too large to rebuild from CSV on every run are written once with
// CreateBadgerStore and scanned read-only by the miner afterwards.
type BadgerStore struct {
	db    *badger.DB
	dict  *mining.Dictionary
	count int
}

func openBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Badger's own logging is noise here

	// The store is scanned start-to-end once per mining level; favor
	// sequential read throughput.
	opts.MemTableSize = 64 << 20
	opts.BlockCacheSize = 128 << 20
	opts.DetectConflicts = false

	return badger.Open(opts)
}

// CreateBadgerStore creates (or overwrites the contents of) a persistent
// store at path for the given universe. Transactions are added with
// Append before the store is handed to the miner.
func CreateBadgerStore(path string, dict *mining.Dictionary) (*BadgerStore, error) {
	db, err := openBadger(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set(dictKey, encodeDictionary(dict))
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to write dictionary: %w", err)
	}

	return &BadgerStore{db: db, dict: dict}, nil
}

// OpenBadgerStore opens an existing persistent store and loads its
// dictionary and transaction count.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	db, err := openBadger(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	s := &BadgerStore{db: db}
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(dictKey)
		if err != nil {
			return fmt.Errorf("store has no dictionary: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			s.dict = decodeDictionary(val)
			return nil
		}); err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // key-only count
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(txPrefix); it.ValidForPrefix(txPrefix); it.Next() {
			s.count++
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Append validates and persists a batch of transactions given as item
// names. Batched writes keep Badger commits fast on large datasets.
func (s *BadgerStore) Append(transactions [][]string) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	appended := 0
	for _, names := range transactions {
		items := make([]mining.Item, 0, len(names))
		for _, name := range names {
			code, err := s.dict.MustCode(name)
			if err != nil {
				return fmt.Errorf("transaction %d: %w", s.count+appended, err)
			}
			items = append(items, code)
		}
		set := mining.NewItemset(items...)

		key := txKey(uint32(s.count + appended))
		if err := wb.Set(key, encodeItemset(set)); err != nil {
			return fmt.Errorf("failed to write transaction: %w", err)
		}
		appended++
	}

	if err := wb.Flush(); err != nil {
		return fmt.Errorf("failed to flush transactions: %w", err)
	}
	s.count += appended
	return nil
}

// Len reports the total transaction count.
func (s *BadgerStore) Len() int {
	return s.count
}

// Dictionary returns the item universe.
func (s *BadgerStore) Dictionary() *mining.Dictionary {
	return s.dict
}

// Scan returns an iterator over transactions in load order.
func (s *BadgerStore) Scan() (Iterator, error) {
	txn := s.db.NewTransaction(false)

	opts := badger.DefaultIteratorOptions
	opts.PrefetchSize = 1000 // bulk sequential scan
	opts.PrefetchValues = true

	it := txn.NewIterator(opts)
	return &badgerIterator{txn: txn, it: it}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func txKey(index uint32) []byte {
	key := make([]byte, len(txPrefix)+4)
	copy(key, txPrefix)
	binary.BigEndian.PutUint32(key[len(txPrefix):], index)
	return key
}

type badgerIterator struct {
	txn    *badger.Txn
	it     *badger.Iterator
	seeked bool
}

func (i *badgerIterator) Next() bool {
	if !i.seeked {
		i.it.Seek(txPrefix)
		i.seeked = true
	} else {
		i.it.Next()
	}
	if !i.it.Valid() {
		return false
	}
	return bytes.HasPrefix(i.it.Item().Key(), txPrefix)
}

func (i *badgerIterator) Transaction() (mining.Itemset, error) {
	var set mining.Itemset
	err := i.it.Item().Value(func(val []byte) error {
		var err error
		set, err = decodeItemset(val)
		return err
	})
	return set, err
}

func (i *badgerIterator) Close() error {
	i.it.Close()
	i.txn.Discard()
	return nil
}
