package mining

import (
	"testing"
)

func TestNewItemsetCanonicalizes(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		expected Itemset
	}{
		{
			name:     "unordered input",
			items:    []Item{3, 1, 2},
			expected: Itemset{1, 2, 3},
		},
		{
			name:     "duplicates collapse",
			items:    []Item{2, 1, 2, 1},
			expected: Itemset{1, 2},
		},
		{
			name:     "single item",
			items:    []Item{5},
			expected: Itemset{5},
		},
		{
			name:     "empty",
			items:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewItemset(tt.items...)
			if !got.Equal(tt.expected) {
				t.Errorf("NewItemset(%v) = %v, want %v", tt.items, got, tt.expected)
			}
		})
	}
}

func TestSubsetTests(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Itemset
		subset bool
		proper bool
	}{
		{"empty in anything", Itemset{}, Itemset{1, 2}, true, true},
		{"equal sets", Itemset{1, 2}, Itemset{1, 2}, true, false},
		{"strict subset", Itemset{1, 3}, Itemset{1, 2, 3}, true, true},
		{"disjoint", Itemset{4}, Itemset{1, 2, 3}, false, false},
		{"overlap only", Itemset{1, 4}, Itemset{1, 2, 3}, false, false},
		{"larger than superset", Itemset{1, 2, 3}, Itemset{1, 2}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsSubsetOf(tt.b); got != tt.subset {
				t.Errorf("IsSubsetOf(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.subset)
			}
			if got := tt.a.IsProperSubsetOf(tt.b); got != tt.proper {
				t.Errorf("IsProperSubsetOf(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.proper)
			}
		})
	}
}

func TestSharesPrefixAndJoin(t *testing.T) {
	a := Itemset{1, 2, 3}
	b := Itemset{1, 2, 5}
	c := Itemset{1, 4, 5}

	if !a.SharesPrefix(b) {
		t.Errorf("expected %v and %v to share a prefix", a, b)
	}
	if a.SharesPrefix(c) {
		t.Errorf("expected %v and %v not to share a prefix", a, c)
	}

	joined := a.Join(b)
	if !joined.Equal(Itemset{1, 2, 3, 5}) {
		t.Errorf("Join(%v, %v) = %v, want [1 2 3 5]", a, b, joined)
	}

	// Join is symmetric regardless of argument order
	joined = b.Join(a)
	if !joined.Equal(Itemset{1, 2, 3, 5}) {
		t.Errorf("Join(%v, %v) = %v, want [1 2 3 5]", b, a, joined)
	}
}

func TestSubsets(t *testing.T) {
	set := Itemset{1, 2, 3}
	subs := set.Subsets()
	if len(subs) != 3 {
		t.Fatalf("expected 3 subsets, got %d", len(subs))
	}

	expected := []Itemset{{2, 3}, {1, 3}, {1, 2}}
	for i, want := range expected {
		if !subs[i].Equal(want) {
			t.Errorf("subset %d = %v, want %v", i, subs[i], want)
		}
	}

	if got := (Itemset{7}).Subsets(); got != nil {
		t.Errorf("singleton subsets = %v, want nil", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     Itemset
		expected int
	}{
		{Itemset{1, 2}, Itemset{1, 2}, 0},
		{Itemset{1, 2}, Itemset{1, 3}, -1},
		{Itemset{1, 3}, Itemset{1, 2}, 1},
		{Itemset{1}, Itemset{1, 2}, -1},
		{Itemset{2}, Itemset{1, 2}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.expected {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestNames(t *testing.T) {
	dict := NewDictionary([]string{"milk", "bread", "eggs"})

	// Codes follow sorted name order: bread=0, eggs=1, milk=2
	bread, _ := dict.Code("bread")
	milk, _ := dict.Code("milk")

	set := NewItemset(milk, bread)
	if got := set.Names(dict); got != "bread,milk" {
		t.Errorf("Names = %q, want %q", got, "bread,milk")
	}
}

func TestDictionaryUnknownItem(t *testing.T) {
	dict := NewDictionary([]string{"milk"})

	if _, err := dict.MustCode("caviar"); err == nil {
		t.Fatal("expected error for unknown item")
	}
	if _, ok := dict.Code("caviar"); ok {
		t.Fatal("Code should report unknown item")
	}
}
