package trie

import "github.com/signadot/trie/debug"

// navState is the one mutable part of the model: a non-owning parent
// back-reference, present only in navigable tree families.
type navState[K comparable, V any] struct {
	parent *Node[K, V]
}

// IsNavigable reports whether the node belongs to a navigable family.
func (n *Node[K, V]) IsNavigable() bool {
	return n.nav != nil
}

// Parent returns the node this one was last attached under, or nil for
// a detached root or a non-navigable node.
func (n *Node[K, V]) Parent() *Node[K, V] {
	if n.nav == nil {
		return nil
	}
	return n.nav.parent
}

// Depth is 0 for a detached or root node, else one more than the
// parent's depth. A parent chain corrupted into a cycle by unsafe
// sharing terminates at the first revisit.
func (n *Node[K, V]) Depth() int {
	seen := map[*Node[K, V]]bool{n: true}
	d := 0
	for p := n.Parent(); p != nil && !seen[p]; p = p.Parent() {
		seen[p] = true
		d++
	}
	return d
}

func (n *Node[K, V]) attach(parent *Node[K, V]) {
	if n.nav == nil {
		return
	}
	n.nav.parent = parent
}

func (n *Node[K, V]) detach() {
	if n.nav == nil {
		return
	}
	n.nav.parent = nil
}

// initNav walks the node's children once at construction time and
// attaches each to n. Under NavUnsafe the attach mutates the child in
// place: a subtree shared under two parents keeps only the most recent
// parent. Under NavSafe each child is deep-copied first.
func (b *Builder[K, V]) initNav(n *Node[K, V]) {
	for _, k := range n.keys {
		child := n.kids[k]
		if b.cfg.nav == NavSafe {
			child = copyTree(child, map[*Node[K, V]]*Node[K, V]{})
			n.kids[k] = child
		}
		if child.nav == nil {
			child.nav = &navState[K, V]{}
		}
		if debug.Nav() && child.nav.parent != nil && child.nav.parent != n {
			debug.Logf("nav: re-attach of shared subtree at key %v\n", k)
		}
		child.attach(n)
	}
}

// copyTree deep-copies a subtree, re-parenting every copied child. The
// seen map carries original-to-copy identities so shared and cyclic
// substructure copies once and stays shared in the copy.
func copyTree[K comparable, V any](n *Node[K, V], seen map[*Node[K, V]]*Node[K, V]) *Node[K, V] {
	if c, ok := seen[n]; ok {
		return c
	}
	c := &Node[K, V]{
		value: n.value,
		def:   n.def,
		nav:   &navState[K, V]{},
	}
	seen[n] = c
	if len(n.keys) > 0 {
		c.keys = make([]K, len(n.keys))
		copy(c.keys, n.keys)
		c.kids = make(map[K]*Node[K, V], len(n.keys))
		for _, k := range n.keys {
			kc := copyTree(n.kids[k], seen)
			c.kids[k] = kc
			kc.attach(c)
		}
	}
	return c
}
