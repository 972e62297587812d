package store

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tbeaumont/lattice-miner/mining"
)

// GeneratorConfig specifies a synthetic basket dataset. A handful of
// items are marked "staples" and drawn with higher probability, which
// gives the generated data a non-trivial frequent-itemset structure
// instead of uniform noise.
type GeneratorConfig struct {
	Items        []string `yaml:"items"`        // item pool; empty uses the built-in grocery pool
	Transactions int      `yaml:"transactions"` // number of baskets
	MinBasket    int      `yaml:"minBasket"`    // minimum items per basket
	MaxBasket    int      `yaml:"maxBasket"`    // maximum items per basket
	Staples      int      `yaml:"staples"`      // leading items drawn with boosted probability
	Seed         int64    `yaml:"seed"`         // rand seed; fixed seed gives reproducible data
}

// DefaultGeneratorConfig returns a small grocery-style dataset: enough
// structure for interesting closed/maximal output, small enough to mine
// instantly.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Items: []string{
			"milk", "bread", "eggs", "butter", "cheese", "apples",
			"bananas", "coffee", "tea", "sugar", "flour", "rice",
		},
		Transactions: 1000,
		MinBasket:    2,
		MaxBasket:    6,
		Staples:      4,
		Seed:         42,
	}
}

// LoadGeneratorConfig reads a YAML profile and fills unset fields from
// the defaults.
func LoadGeneratorConfig(path string) (GeneratorConfig, error) {
	def := DefaultGeneratorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("failed to read generator config: %w", err)
	}

	var cfg GeneratorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, fmt.Errorf("failed to parse generator config: %w", err)
	}

	if len(cfg.Items) == 0 {
		cfg.Items = def.Items
	}
	if cfg.Transactions == 0 {
		cfg.Transactions = def.Transactions
	}
	if cfg.MinBasket == 0 {
		cfg.MinBasket = def.MinBasket
	}
	if cfg.MaxBasket == 0 {
		cfg.MaxBasket = def.MaxBasket
	}
	if cfg.Staples == 0 {
		cfg.Staples = def.Staples
	}
	return cfg, nil
}

func (c GeneratorConfig) validate() error {
	if c.Transactions <= 0 {
		return fmt.Errorf("generator: transactions must be positive, got %d", c.Transactions)
	}
	if c.MinBasket < 1 || c.MaxBasket < c.MinBasket {
		return fmt.Errorf("generator: basket bounds [%d,%d] invalid", c.MinBasket, c.MaxBasket)
	}
	if c.MaxBasket > len(c.Items) {
		return fmt.Errorf("generator: max basket %d exceeds item pool of %d", c.MaxBasket, len(c.Items))
	}
	return nil
}

// Generate builds an in-memory store of synthetic baskets. The same
// config (including seed) always produces the same store.
func Generate(cfg GeneratorConfig) (*MemoryStore, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dict := mining.NewDictionary(cfg.Items)
	s := NewMemoryStore(dict)
	rng := rand.New(rand.NewSource(cfg.Seed))

	staples := cfg.Staples
	if staples > len(cfg.Items) {
		staples = len(cfg.Items)
	}

	for t := 0; t < cfg.Transactions; t++ {
		size := cfg.MinBasket + rng.Intn(cfg.MaxBasket-cfg.MinBasket+1)

		picked := make(map[mining.Item]bool, size)
		items := make([]mining.Item, 0, size)
		for len(items) < size {
			var code mining.Item
			// Staples are drawn twice as often as the rest of the pool.
			if staples > 0 && rng.Intn(2) == 0 {
				code = mining.Item(rng.Intn(staples))
			} else {
				code = mining.Item(rng.Intn(dict.Size()))
			}
			if picked[code] {
				continue
			}
			picked[code] = true
			items = append(items, code)
		}

		if err := s.AppendItems(items...); err != nil {
			return nil, err
		}
	}
	return s, nil
}
