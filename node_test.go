package trie

import (
	"errors"
	"testing"
)

func ref[T any](v T) *T { return &v }

// fixture builds the shared test tree
//
//	{value: 7,
//	 d -> {value: 4, a -> {value: 1}, b -> {value: 2}},
//	 e -> {value: 5, c -> {value: 3}},
//	 f -> {value: 6, d -> <shared d>, x -> <shared e>}}
func fixture(b *Builder[string, int]) *Node[string, int] {
	d := b.Build(ref(4), []Child[string, int]{
		{Key: "a", Node: b.Leaf(1)},
		{Key: "b", Node: b.Leaf(2)},
	}, nil)
	e := b.Build(ref(5), []Child[string, int]{
		{Key: "c", Node: b.Leaf(3)},
	}, nil)
	f := b.Build(ref(6), []Child[string, int]{
		{Key: "d", Node: d},
		{Key: "x", Node: e},
	}, nil)
	return b.Build(ref(7), []Child[string, int]{
		{Key: "d", Node: d},
		{Key: "e", Node: e},
		{Key: "f", Node: f},
	}, nil)
}

func TestNodeGet(t *testing.T) {
	b := NewBuilder[string, int]()
	m := fixture(b)

	d, ok := m.Get("d")
	if !ok {
		t.Fatal("no child at d")
	}
	if v, ok := d.Value(); !ok || v != 4 {
		t.Errorf("value at d: got %v, %v, want 4, true", v, ok)
	}
	if _, ok := m.Get("z"); ok {
		t.Error("z should be absent")
	}
}

func TestNodeAt(t *testing.T) {
	b := NewBuilder[string, int]()
	m := fixture(b)

	tests := []struct {
		name string
		path []string
		want int
	}{
		{name: "root child", path: []string{"d"}, want: 4},
		{name: "nested", path: []string{"d", "a"}, want: 1},
		{name: "shared subtree", path: []string{"f", "d", "b"}, want: 2},
		{name: "empty path", path: nil, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := m.At(tt.path...)
			if err != nil {
				t.Fatalf("At(%v): %v", tt.path, err)
			}
			if v, ok := n.Value(); !ok || v != tt.want {
				t.Errorf("At(%v).Value(): got %v, %v, want %d, true", tt.path, v, ok, tt.want)
			}
		})
	}
}

func TestNodeApplyNotFound(t *testing.T) {
	b := NewBuilder[string, int]()
	m := fixture(b)

	_, err := m.Apply("z")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Apply(z): got %v, want ErrKeyNotFound", err)
	}
	_, err = m.At("d", "a", "deep")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("At(d, a, deep): got %v, want ErrKeyNotFound", err)
	}
}

func TestNodeApplyDefault(t *testing.T) {
	b := NewBuilder[string, int]()
	syn := b.Leaf(99)
	n := b.Build(nil, []Child[string, int]{
		{Key: "a", Node: b.Leaf(1)},
	}, func(string) *Node[string, int] { return syn })

	got, err := n.Apply("anything")
	if err != nil {
		t.Fatalf("Apply through default: %v", err)
	}
	if got != syn {
		t.Error("default child not returned")
	}
	// Get never consults the default.
	if _, ok := n.Get("anything"); ok {
		t.Error("Get consulted the default")
	}
}

func TestNodeKeysOrder(t *testing.T) {
	b := NewBuilder[string, int]()
	m := fixture(b)

	want := []string{"d", "e", "f"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys: got %v, want %v", got, want)
		}
	}
}

func TestNodeDefinedAt(t *testing.T) {
	b := NewBuilder[string, int]()
	plain := fixture(b)
	defaulted := b.WithDefault(plain, func(string) *Node[string, int] { return b.Leaf(0) })

	if !plain.Contains("d") || plain.Contains("z") {
		t.Error("Contains follows physical children only")
	}
	if plain.IsDefinedAt("z") {
		t.Error("no default, z undefined")
	}
	if !defaulted.IsDefinedAt("z") {
		t.Error("default makes every key defined")
	}
	if defaulted.Contains("z") {
		t.Error("Contains must ignore the default")
	}
}

func TestNonSignificant(t *testing.T) {
	b := NewBuilder[string, int]()

	if !b.Empty().IsNonSignificant() {
		t.Error("empty node is non-significant")
	}
	if b.Leaf(1).IsNonSignificant() {
		t.Error("valued node is significant")
	}
	if b.Constant(1).IsNonSignificant() {
		t.Error("defaulted node is significant")
	}
}
