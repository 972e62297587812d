// Package store holds transaction data for the mining engine: an
// in-memory store for baskets loaded from CSV or generated
// synthetically, and a BadgerDB-backed store for persistent datasets.
// Both are read-only shared state once loaded; the miner scans them
// without locking.
package store

import (
	"github.com/tbeaumont/lattice-miner/mining"
)

// Store is the transaction-store surface the miner consumes: an ordered
// sequence of transactions over a fixed item universe.
type Store interface {
	// Len reports the total transaction count.
	Len() int

	// Dictionary returns the item universe the transactions draw from.
	Dictionary() *mining.Dictionary

	// Scan returns an iterator over transactions in load order. Each
	// transaction is a canonical itemset.
	Scan() (Iterator, error)

	// Lifecycle
	Close() error
}

// Iterator provides sequential access to transactions.
type Iterator interface {
	Next() bool
	Transaction() (mining.Itemset, error)
	Close() error
}
