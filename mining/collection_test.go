package mining

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionBuilderOrdersLevels(t *testing.T) {
	b := NewCollectionBuilder(10)
	b.AddLevel([]Entry{
		{Set: Itemset{2}, Count: 7},
		{Set: Itemset{0}, Count: 5},
		{Set: Itemset{1}, Count: 6},
	})
	b.AddLevel([]Entry{
		{Set: Itemset{1, 2}, Count: 4},
		{Set: Itemset{0, 1}, Count: 3},
	})

	c, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, 5, c.Len())
	require.Equal(t, 2, c.MaxOrder())

	entries := c.Entries()
	expected := []Itemset{{0}, {1}, {2}, {0, 1}, {1, 2}}
	for i, want := range expected {
		assert.True(t, entries[i].Set.Equal(want),
			"entry %d = %v, want %v", i, entries[i].Set, want)
	}
}

func TestCollectionSupportDerivedAtReadTime(t *testing.T) {
	b := NewCollectionBuilder(3)
	b.AddLevel([]Entry{{Set: Itemset{0}, Count: 2}})
	c, err := b.Build()
	require.NoError(t, err)

	count, ok := c.Count(Itemset{0})
	require.True(t, ok)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 2.0/3.0, c.Support(count), 1e-15)

	_, ok = c.Count(Itemset{1})
	assert.False(t, ok)
}

func TestBuildRejectsMissingSubset(t *testing.T) {
	b := NewCollectionBuilder(10)
	b.AddLevel([]Entry{{Set: Itemset{0}, Count: 5}})
	// {1} missing at order 1
	b.AddLevel([]Entry{{Set: Itemset{0, 1}, Count: 3}})

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentLattice))
}

func TestBuildRejectsSupportInversion(t *testing.T) {
	b := NewCollectionBuilder(10)
	b.AddLevel([]Entry{
		{Set: Itemset{0}, Count: 2},
		{Set: Itemset{1}, Count: 5},
	})
	// superset cannot exceed its subset's count
	b.AddLevel([]Entry{{Set: Itemset{0, 1}, Count: 4}})

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentLattice))
}

func TestEmptyCollection(t *testing.T) {
	c, err := NewCollectionBuilder(5).Build()
	require.NoError(t, err)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.MaxOrder())
	assert.Empty(t, c.Entries())
}

func TestViewOrdering(t *testing.T) {
	v := NewView(4, []Entry{
		{Set: Itemset{0, 1}, Count: 2},
		{Set: Itemset{2}, Count: 3},
		{Set: Itemset{0}, Count: 3},
	})

	entries := v.Entries()
	expected := []Itemset{{0}, {2}, {0, 1}}
	for i, want := range expected {
		assert.True(t, entries[i].Set.Equal(want),
			"entry %d = %v, want %v", i, entries[i].Set, want)
	}
	assert.True(t, v.Contains(Itemset{2}))
	assert.False(t, v.Contains(Itemset{1}))
}
