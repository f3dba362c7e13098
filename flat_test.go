package trie

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
)

func TestFlatten(t *testing.T) {
	b := NewBuilder[string, int]()
	m := fixture(b)

	want := []Entry[string, int]{
		{Path: []string{}, Value: 7},
		{Path: []string{"d"}, Value: 4},
		{Path: []string{"d", "a"}, Value: 1},
		{Path: []string{"d", "b"}, Value: 2},
		{Path: []string{"e"}, Value: 5},
		{Path: []string{"e", "c"}, Value: 3},
		{Path: []string{"f"}, Value: 6},
		{Path: []string{"f", "d"}, Value: 4},
		{Path: []string{"f", "d", "a"}, Value: 1},
		{Path: []string{"f", "d", "b"}, Value: 2},
		{Path: []string{"f", "x"}, Value: 5},
		{Path: []string{"f", "x", "c"}, Value: 3},
	}
	got := Flatten(m)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepenRoundTrip(t *testing.T) {
	b := NewBuilder[string, int]()
	m := fixture(b)

	back := b.Deepen(Flatten(m))
	if !Equal(m, back) {
		t.Error("deepen(flatten(m)) differs from m")
	}
}

func TestDeepenLastWriteWins(t *testing.T) {
	b := NewBuilder[string, int]()

	tests := []struct {
		name    string
		entries []Entry[string, int]
		path    []string
		want    int
	}{
		{
			name: "adjacent duplicate",
			entries: []Entry[string, int]{
				{Path: []string{"a"}, Value: 1},
				{Path: []string{"a"}, Value: 2},
			},
			path: []string{"a"},
			want: 2,
		},
		{
			name: "out of order duplicate",
			entries: []Entry[string, int]{
				{Path: []string{"a"}, Value: 1},
				{Path: []string{"b"}, Value: 5},
				{Path: []string{"a"}, Value: 3},
			},
			path: []string{"a"},
			want: 3,
		},
		{
			name: "root duplicate",
			entries: []Entry[string, int]{
				{Path: nil, Value: 1},
				{Path: []string{"a"}, Value: 2},
				{Path: nil, Value: 9},
			},
			path: nil,
			want: 9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := b.Deepen(tt.entries).At(tt.path...)
			if err != nil {
				t.Fatalf("At(%v): %v", tt.path, err)
			}
			if v, _ := n.Value(); v != tt.want {
				t.Errorf("got %d, want %d", v, tt.want)
			}
		})
	}
}

func TestDeepenKeepsFirstPosition(t *testing.T) {
	b := NewBuilder[string, int]()
	n := b.Deepen([]Entry[string, int]{
		{Path: []string{"a"}, Value: 1},
		{Path: []string{"b"}, Value: 2},
		{Path: []string{"a"}, Value: 3},
	})
	keys := n.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys: got %v, want [a b]", keys)
	}
}

func TestRoundTripRandom(t *testing.T) {
	const seed = 1234567890
	fake := gofakeit.New(seed)
	b := NewBuilder[string, int]()

	for round := 0; round < 50; round++ {
		nEntries := fake.IntRange(1, 40)
		entries := make([]Entry[string, int], 0, nEntries)
		for i := 0; i < nEntries; i++ {
			depth := fake.IntRange(0, 5)
			path := make([]string, depth)
			for j := range path {
				path[j] = fake.RandomString([]string{"a", "b", "c", "d", "e"})
			}
			entries = append(entries, Entry[string, int]{
				Path:  path,
				Value: fake.IntRange(0, 1000),
			})
		}
		tree := b.Deepen(entries)
		back := b.Deepen(Flatten(tree))
		if !Equal(tree, back) {
			t.Fatalf("round %d: deepen(flatten(t)) differs from t for entries %v", round, entries)
		}
	}
}
