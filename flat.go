package trie

import "github.com/signadot/trie/debug"

// Entry is one element of the canonical flat form: the full key path
// from the root to a value-bearing node, and the value found there.
// The empty path addresses the root's own value.
type Entry[K comparable, V any] struct {
	Path  []K
	Value V
}

// Flatten returns the canonical flat form of n in top-first traversal
// order. Non-significant branches contribute nothing; default
// functions are not expanded (the flat form covers physical structure
// only). A subtree shared under several keys is recorded at every
// path. Flatten requires finite physical structure; cyclic trees are
// the province of DeepForEach.
func Flatten[K comparable, V any](n *Node[K, V]) []Entry[K, V] {
	var out []Entry[K, V]
	flatten(n, nil, &out)
	return out
}

func flatten[K comparable, V any](n *Node[K, V], path []K, out *[]Entry[K, V]) {
	if n.value != nil {
		*out = append(*out, Entry[K, V]{Path: pathCopy(path), Value: *n.value})
	}
	for _, k := range n.keys {
		flatten(n.kids[k], append(path[:len(path):len(path)], k), out)
	}
}

// Deepen reconstructs a tree from the canonical flat form. Entries are
// grouped by their first key, preserving first-occurrence order, and
// each group's remainders deepen recursively into a subtree. A later
// entry for an identical full path supersedes an earlier one, even
// when other paths are interleaved in between; the superseded entry's
// position is kept. This last-write policy is user-visible, not an
// error.
func (b *Builder[K, V]) Deepen(entries []Entry[K, V]) *Node[K, V] {
	if debug.Flat() {
		debug.Logf("deepen %d entries\n", len(entries))
	}
	var rootVal *V
	var order []K
	groups := make(map[K][]Entry[K, V])
	for _, e := range entries {
		if len(e.Path) == 0 {
			v := e.Value
			rootVal = &v
			continue
		}
		k := e.Path[0]
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], Entry[K, V]{Path: e.Path[1:], Value: e.Value})
	}
	children := make([]Child[K, V], 0, len(order))
	for _, k := range order {
		children = append(children, Child[K, V]{Key: k, Node: b.Deepen(groups[k])})
	}
	return b.Build(rootVal, children, nil)
}
