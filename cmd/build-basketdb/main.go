package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tbeaumont/lattice-miner/mining/store"
)

func main() {
	configPath := flag.String("config", "", "YAML generator profile (default: built-in grocery profile)")
	csvPath := flag.String("csv", "", "load baskets from CSV instead of generating")
	outPath := flag.String("out", "baskets.db", "output database path")
	flag.Parse()

	src, err := loadSource(*configPath, *csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build source data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Building basket database: %s\n", *outPath)
	fmt.Printf("  Items: %d\n", src.Dictionary().Size())
	fmt.Printf("  Transactions: %d\n", src.Len())

	if err := os.RemoveAll(*outPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to remove existing db: %v\n", err)
		os.Exit(1)
	}

	db, err := store.CreateBadgerStore(*outPath, src.Dictionary())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Write in batches to keep Badger commits fast
	const batchSize = 5000
	dict := src.Dictionary()
	batch := make([][]string, 0, batchSize)
	for i := 0; i < src.Len(); i++ {
		tx := src.Transaction(i)
		names := make([]string, tx.Order())
		for j, item := range tx {
			names[j] = dict.Name(item)
		}
		batch = append(batch, names)

		if len(batch) == batchSize || i == src.Len()-1 {
			if err := db.Append(batch); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write transactions: %v\n", err)
				os.Exit(1)
			}
			batch = batch[:0]
		}
	}

	fmt.Printf("\nDone! Mine it with:\n")
	fmt.Printf("   lattice-miner -db %s -support 0.1\n", *outPath)
}

func loadSource(configPath, csvPath string) (*store.MemoryStore, error) {
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return store.LoadBasketCSV(f, nil)
	}

	cfg := store.DefaultGeneratorConfig()
	if configPath != "" {
		var err error
		cfg, err = store.LoadGeneratorConfig(configPath)
		if err != nil {
			return nil, err
		}
	}
	return store.Generate(cfg)
}
