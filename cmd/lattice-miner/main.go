package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tbeaumont/lattice-miner/mining"
	"github.com/tbeaumont/lattice-miner/mining/annotations"
	"github.com/tbeaumont/lattice-miner/mining/miner"
	"github.com/tbeaumont/lattice-miner/mining/reduce"
	"github.com/tbeaumont/lattice-miner/mining/report"
	"github.com/tbeaumont/lattice-miner/mining/store"
)

func main() {
	var csvPath string
	var dbPath string
	var generate bool
	var configPath string
	var minSupport float64
	var maxOrder int
	var workers int
	var mode string
	var format string
	var outPath string
	var verbose bool

	flag.StringVar(&csvPath, "csv", "", "basket CSV input (one transaction per row)")
	flag.StringVar(&dbPath, "db", "", "persistent basket database path")
	flag.BoolVar(&generate, "generate", false, "mine a generated synthetic dataset")
	flag.StringVar(&configPath, "config", "", "YAML generator profile (with -generate)")
	flag.Float64Var(&minSupport, "support", 0.1, "minimum support threshold in (0,1]")
	flag.IntVar(&maxOrder, "max-order", 0, "cap itemset order (0 = unbounded)")
	flag.IntVar(&workers, "workers", 0, "parallel support-counting workers (0 = sequential)")
	flag.StringVar(&mode, "mode", "all", "output: frequent, closed, maximal, or all")
	flag.StringVar(&format, "format", "table", "output format: table, csv, or json")
	flag.StringVar(&outPath, "out", "", "write output to file instead of stdout")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode (show mining annotations)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [basket.csv]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Mines frequent, closed and maximal itemsets from basket data.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s baskets.csv                      # Mine a basket CSV at default support\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -csv baskets.csv -support 0.05   # Lower threshold\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db baskets.db -mode maximal     # Maximal itemsets from a persistent store\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -generate -verbose               # Synthetic data with progress output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -csv baskets.csv -format json    # JSON export\n", os.Args[0])
	}
	flag.Parse()

	// Check for positional argument
	if csvPath == "" && flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	s, err := openStore(csvPath, dbPath, generate, configPath)
	if err != nil {
		log.Fatalf("Failed to open transaction store: %v", err)
	}
	defer s.Close()

	// Create annotation handler if verbose mode
	var handler annotations.Handler
	if verbose {
		formatter := annotations.NewOutputFormatter(os.Stderr)
		handler = formatter.Handle
	}

	opts := miner.Options{
		MinSupport: minSupport,
		MaxOrder:   maxOrder,
		Workers:    workers,
		Handler:    handler,
	}

	collection, err := miner.Mine(context.Background(), s, opts)
	if err != nil {
		log.Fatalf("Mining failed: %v", err)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	dict := s.Dictionary()
	if err := render(out, collection, dict, mode, format, handler); err != nil {
		log.Fatalf("Failed to render output: %v", err)
	}
}

// openStore resolves the input flags to a transaction store.
func openStore(csvPath, dbPath string, generate bool, configPath string) (store.Store, error) {
	switch {
	case dbPath != "":
		return store.OpenBadgerStore(dbPath)

	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		// Universe inferred from the data
		return store.LoadBasketCSV(f, nil)

	case generate:
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

	return nil, fmt.Errorf("no input: pass a basket CSV, -db, or -generate")
}

// render writes the requested collections in the requested format.
func render(out *os.File, collection *mining.Collection, dict *mining.Dictionary,
	mode, format string, handler annotations.Handler) error {

	type section struct {
		title string
		src   mining.ItemsetSource
	}
	var sections []section

	wantAll := mode == "all"
	if wantAll || mode == "frequent" {
		sections = append(sections, section{"Frequent itemsets", collection})
	}
	if wantAll || mode == "closed" {
		start := time.Now()
		view := reduce.Closed(collection)
		handler.Timed(annotations.ReduceClosed, start, map[string]interface{}{
			"closed":   view.Len(),
			"frequent": collection.Len(),
		})
		sections = append(sections, section{"Closed itemsets", view})
	}
	if wantAll || mode == "maximal" {
		start := time.Now()
		view := reduce.Maximal(collection)
		handler.Timed(annotations.ReduceMaximal, start, map[string]interface{}{
			"maximal":  view.Len(),
			"frequent": collection.Len(),
		})
		sections = append(sections, section{"Maximal itemsets", view})
	}
	if len(sections) == 0 {
		return fmt.Errorf("unknown mode %q (use frequent, closed, maximal, or all)", mode)
	}

	switch format {
	case "table":
		formatter := report.NewTableFormatter(dict)
		for _, sec := range sections {
			fmt.Fprintf(out, "## %s\n\n%s\n", sec.title, formatter.Format(sec.src))
		}
		return nil

	case "csv":
		for i, sec := range sections {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if len(sections) > 1 {
				fmt.Fprintf(out, "# %s\n", strings.ToLower(sec.title))
			}
			if err := report.WriteCSV(out, sec.src, dict); err != nil {
				return err
			}
		}
		return nil

	case "json":
		for _, sec := range sections {
			if err := report.WriteJSON(out, sec.src, dict); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unknown format %q (use table, csv, or json)", format)
}
