package treediff

import (
	"strings"
	"testing"

	"github.com/signadot/trie"
)

func TestDiff(t *testing.T) {
	b := trie.NewBuilder[string, string]()
	from := b.Deepen([]trie.Entry[string, string]{
		{Path: []string{"a"}, Value: "hello world"},
		{Path: []string{"b"}, Value: "stays"},
		{Path: []string{"c"}, Value: "gone"},
	})
	to := b.Deepen([]trie.Entry[string, string]{
		{Path: []string{"a"}, Value: "hello there"},
		{Path: []string{"b"}, Value: "stays"},
		{Path: []string{"d"}, Value: "new"},
	})

	deltas := Diff(from, to)
	if len(deltas) != 3 {
		t.Fatalf("got %d deltas, want 3: %v", len(deltas), deltas)
	}

	byPath := map[string]Delta[string]{}
	for _, d := range deltas {
		byPath[strings.Join(d.Path, ".")] = d
	}

	a := byPath["a"]
	if a.Kind != Changed || a.From != "hello world" || a.To != "hello there" {
		t.Errorf("a: got %+v", a)
	}
	if a.Patch == "" {
		t.Error("changed delta must carry a patch")
	}
	if c := byPath["c"]; c.Kind != Removed || c.From != "gone" {
		t.Errorf("c: got %+v", c)
	}
	if d := byPath["d"]; d.Kind != Added || d.To != "new" {
		t.Errorf("d: got %+v", d)
	}
}

func TestDiffIdentical(t *testing.T) {
	b := trie.NewBuilder[string, int]()
	n := b.Deepen([]trie.Entry[string, int]{
		{Path: nil, Value: 1},
		{Path: []string{"a"}, Value: 2},
	})
	if deltas := Diff(n, n); len(deltas) != 0 {
		t.Errorf("identical trees: got %v, want none", deltas)
	}
}

func TestDiffOrder(t *testing.T) {
	b := trie.NewBuilder[string, int]()
	from := b.Deepen([]trie.Entry[string, int]{
		{Path: []string{"x"}, Value: 1},
		{Path: []string{"y"}, Value: 2},
	})
	to := b.Empty()

	deltas := Diff(from, to)
	if len(deltas) != 2 || deltas[0].Path[0] != "x" || deltas[1].Path[0] != "y" {
		t.Errorf("removed deltas must come in from-order: %v", deltas)
	}
}
