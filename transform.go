package trie

import "fmt"

// Map transforms every value in n with f, preserving structure. The
// target builder carries the result's configuration, since the value
// type may change. A default function is transformed lazily, by
// wrapping the function itself; a self-referential default (Constant)
// therefore maps without unrolling.
func Map[K comparable, V, W any](b *Builder[K, W], n *Node[K, V], f func(V) W) *Node[K, W] {
	var value *W
	if n.value != nil {
		w := f(*n.value)
		value = &w
	}
	children := make([]Child[K, W], 0, len(n.keys))
	for _, k := range n.keys {
		children = append(children, Child[K, W]{Key: k, Node: Map(b, n.kids[k], f)})
	}
	var def func(K) *Node[K, W]
	if n.def != nil {
		orig := n.def
		def = func(k K) *Node[K, W] { return Map(b, orig(k), f) }
	}
	return b.Build(value, children, def)
}

// MapKeys transforms every key in n with f. The inverse is required
// only when a default function is present anywhere in the tree, since
// default lookups in the new key space must translate back; this is a
// caller contract checked at runtime, not statically. Missing inverse
// over a defaulted node returns ErrIllegalStructure.
func MapKeys[K, L comparable, V any](b *Builder[L, V], n *Node[K, V], f func(K) L, inv func(L) K) (*Node[L, V], error) {
	if n.def != nil && inv == nil {
		return nil, fmt.Errorf("map keys over a defaulted tree requires an inverse: %w", ErrIllegalStructure)
	}
	children := make([]Child[L, V], 0, len(n.keys))
	for _, k := range n.keys {
		sub, err := MapKeys(b, n.kids[k], f, inv)
		if err != nil {
			return nil, err
		}
		children = append(children, Child[L, V]{Key: f(k), Node: sub})
	}
	var def func(L) *Node[L, V]
	if n.def != nil {
		orig := n.def
		def = func(l L) *Node[L, V] {
			// inv is non-nil here, so the recursion cannot fail.
			sub, err := MapKeys(b, orig(inv(l)), f, inv)
			if err != nil {
				return b.Empty()
			}
			return sub
		}
	}
	return b.Build(n.value, children, def), nil
}

// FlatMap expands every value into a subtree and splices it in. On a
// key collision between expanded and existing structure, the existing
// branch wins: the expanded child for that key is dropped whole, never
// merged. The expanded subtree's root value becomes the node's value.
func FlatMap[K comparable, V, W any](b *Builder[K, W], n *Node[K, V], f func(V) *Node[K, W]) *Node[K, W] {
	var expanded *Node[K, W]
	if n.value != nil {
		expanded = f(*n.value)
	}
	children := make([]Child[K, W], 0, len(n.keys))
	for _, k := range n.keys {
		children = append(children, Child[K, W]{Key: k, Node: FlatMap(b, n.kids[k], f)})
	}
	var value *W
	if expanded != nil {
		value = expanded.value
		for _, k := range expanded.keys {
			if n.Contains(k) {
				continue
			}
			children = append(children, Child[K, W]{Key: k, Node: expanded.kids[k]})
		}
	}
	var def func(K) *Node[K, W]
	if n.def != nil {
		orig := n.def
		def = func(k K) *Node[K, W] { return FlatMap(b, orig(k), f) }
	}
	return b.Build(value, children, def)
}

// Filter keeps only the values satisfying pred; structure is
// preserved, except that builders configured with WithStripEmpty prune
// branches made non-significant by the filtering. A default function
// filters lazily.
func Filter[K comparable, V any](b *Builder[K, V], n *Node[K, V], pred func(V) bool) *Node[K, V] {
	var value *V
	if n.value != nil && pred(*n.value) {
		value = n.value
	}
	children := make([]Child[K, V], 0, len(n.keys))
	for _, k := range n.keys {
		children = append(children, Child[K, V]{Key: k, Node: Filter(b, n.kids[k], pred)})
	}
	var def func(K) *Node[K, V]
	if n.def != nil {
		orig := n.def
		def = func(k K) *Node[K, V] { return Filter(b, orig(k), pred) }
	}
	return b.Build(value, children, def)
}
