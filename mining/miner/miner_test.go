package miner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaumont/lattice-miner/mining"
	"github.com/tbeaumont/lattice-miner/mining/store"
)

// groceryStore builds the canonical three-basket fixture:
// {milk,bread}, {milk,bread,eggs}, {eggs}.
func groceryStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	dict := mining.NewDictionary([]string{"milk", "bread", "eggs"})
	s := store.NewMemoryStore(dict)
	require.NoError(t, s.Append("milk", "bread"))
	require.NoError(t, s.Append("milk", "bread", "eggs"))
	require.NoError(t, s.Append("eggs"))
	return s
}

func names(dict *mining.Dictionary, c mining.ItemsetSource) map[string]int {
	out := make(map[string]int)
	for _, e := range c.Entries() {
		out[e.Set.Names(dict)] = e.Count
	}
	return out
}

func TestMineGroceryScenario(t *testing.T) {
	s := groceryStore(t)

	c, err := Mine(context.Background(), s, DefaultOptions(0.34))
	require.NoError(t, err)

	got := names(s.Dictionary(), c)
	expected := map[string]int{
		"milk":       2,
		"bread":      2,
		"eggs":       2,
		"bread,milk": 2,
	}
	assert.Equal(t, expected, got)

	// {milk,eggs} and {bread,eggs} sit at support 1/3, below 0.34
	_, ok := c.Count(mining.NewItemset(mustCode(t, s, "bread"), mustCode(t, s, "eggs")))
	assert.False(t, ok)
}

func mustCode(t *testing.T, s *store.MemoryStore, name string) mining.Item {
	t.Helper()
	code, ok := s.Dictionary().Code(name)
	require.True(t, ok)
	return code
}

func TestMineInvalidThreshold(t *testing.T) {
	s := groceryStore(t)

	for _, bad := range []float64{0, -0.5, 1.5} {
		_, err := Mine(context.Background(), s, DefaultOptions(bad))
		require.Error(t, err, "threshold %v", bad)
		assert.True(t, errors.Is(err, mining.ErrInvalidThreshold))
	}
}

func TestMineEmptyResultIsNotAnError(t *testing.T) {
	s := groceryStore(t)

	// Just above the maximum singleton support of 2/3
	c, err := Mine(context.Background(), s, DefaultOptions(0.7))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestMineFullSupportBoundary(t *testing.T) {
	dict := mining.NewDictionary([]string{"a", "b"})
	s := store.NewMemoryStore(dict)
	require.NoError(t, s.Append("a", "b"))
	require.NoError(t, s.Append("a", "b"))
	require.NoError(t, s.Append("a"))

	c, err := Mine(context.Background(), s, DefaultOptions(1.0))
	require.NoError(t, err)

	// Only "a" appears in every transaction
	got := names(dict, c)
	assert.Equal(t, map[string]int{"a": 3}, got)
}

func TestMineMonotonicity(t *testing.T) {
	cfg := store.DefaultGeneratorConfig()
	cfg.Transactions = 300
	s, err := store.Generate(cfg)
	require.NoError(t, err)

	low, err := Mine(context.Background(), s, DefaultOptions(0.05))
	require.NoError(t, err)
	high, err := Mine(context.Background(), s, DefaultOptions(0.2))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, low.Len(), high.Len())

	// Every itemset frequent at the higher threshold is frequent at the
	// lower one with the same count
	for _, e := range high.Entries() {
		count, ok := low.Count(e.Set)
		require.True(t, ok, "itemset %v lost at lower threshold", e.Set)
		assert.Equal(t, e.Count, count)
	}
}

func TestMineDownwardClosure(t *testing.T) {
	cfg := store.DefaultGeneratorConfig()
	cfg.Transactions = 200
	s, err := store.Generate(cfg)
	require.NoError(t, err)

	c, err := Mine(context.Background(), s, DefaultOptions(0.1))
	require.NoError(t, err)

	for _, e := range c.Entries() {
		for _, sub := range e.Set.Subsets() {
			count, ok := c.Count(sub)
			require.True(t, ok, "subset %v of %v missing", sub, e.Set)
			assert.GreaterOrEqual(t, count, e.Count,
				"subset %v has lower support than %v", sub, e.Set)
		}
	}
}

func TestMineDeterminism(t *testing.T) {
	cfg := store.DefaultGeneratorConfig()
	cfg.Transactions = 200
	s, err := store.Generate(cfg)
	require.NoError(t, err)

	a, err := Mine(context.Background(), s, DefaultOptions(0.1))
	require.NoError(t, err)
	b, err := Mine(context.Background(), s, DefaultOptions(0.1))
	require.NoError(t, err)

	ea, eb := a.Entries(), b.Entries()
	require.Equal(t, len(ea), len(eb))
	for i := range ea {
		assert.True(t, ea[i].Set.Equal(eb[i].Set))
		assert.Equal(t, ea[i].Count, eb[i].Count)
	}
}

func TestMineParallelMatchesSequential(t *testing.T) {
	cfg := store.DefaultGeneratorConfig()
	cfg.Transactions = 300
	s, err := store.Generate(cfg)
	require.NoError(t, err)

	seq, err := Mine(context.Background(), s, DefaultOptions(0.05))
	require.NoError(t, err)

	opts := DefaultOptions(0.05)
	opts.Workers = 4
	par, err := Mine(context.Background(), s, opts)
	require.NoError(t, err)

	es, ep := seq.Entries(), par.Entries()
	require.Equal(t, len(es), len(ep))
	for i := range es {
		assert.True(t, es[i].Set.Equal(ep[i].Set))
		assert.Equal(t, es[i].Count, ep[i].Count)
	}
}

func TestMineMaxOrderCap(t *testing.T) {
	s := groceryStore(t)

	opts := DefaultOptions(0.34)
	opts.MaxOrder = 1
	c, err := Mine(context.Background(), s, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, c.MaxOrder())
	assert.Equal(t, 3, c.Len())
}

func TestMineAbortsBetweenLevels(t *testing.T) {
	s := groceryStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Mine(ctx, s, DefaultOptions(0.34))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMineEmptyStore(t *testing.T) {
	dict := mining.NewDictionary([]string{"a"})
	s := store.NewMemoryStore(dict)

	c, err := Mine(context.Background(), s, DefaultOptions(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestGenerateCandidatesPrunes(t *testing.T) {
	// Frequent 2-sets {0,1},{0,2},{1,2} join to candidate {0,1,2} with
	// all subsets frequent; {0,1},{0,3} joins to {0,1,3} whose subset
	// {1,3} is infrequent and must be pruned before counting.
	level := []mining.Entry{
		{Set: mining.Itemset{0, 1}, Count: 5},
		{Set: mining.Itemset{0, 2}, Count: 5},
		{Set: mining.Itemset{0, 3}, Count: 5},
		{Set: mining.Itemset{1, 2}, Count: 5},
	}

	candidates, pruned := generateCandidates(level)
	require.Len(t, candidates, 1)
	assert.True(t, candidates[0].Equal(mining.Itemset{0, 1, 2}))
	assert.Equal(t, 2, pruned)
}

func TestMineOverBadgerStore(t *testing.T) {
	path := t.TempDir() + "/baskets.db"
	dict := mining.NewDictionary([]string{"milk", "bread", "eggs"})

	bs, err := store.CreateBadgerStore(path, dict)
	require.NoError(t, err)
	defer bs.Close()

	err = bs.Append([][]string{
		{"milk", "bread"},
		{"milk", "bread", "eggs"},
		{"eggs"},
	})
	require.NoError(t, err)

	c, err := Mine(context.Background(), bs, DefaultOptions(0.34))
	require.NoError(t, err)

	got := names(dict, c)
	assert.Equal(t, map[string]int{
		"milk": 2, "bread": 2, "eggs": 2, "bread,milk": 2,
	}, got)
}
