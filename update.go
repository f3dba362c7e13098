package trie

// Update returns a new tree with sub placed under key. When key is
// already present the builder's merge policy decides: Replace discards
// the old subtree, Merge combines old and new recursively (incoming
// value wins where both carry one, children union with the existing
// keys first, incoming default wins where present).
func (b *Builder[K, V]) Update(n *Node[K, V], key K, sub *Node[K, V]) *Node[K, V] {
	next := sub
	if old, ok := n.Get(key); ok && b.cfg.merge == Merge {
		next = b.mergeNodes(old, sub)
	}
	children := make([]Child[K, V], 0, len(n.keys)+1)
	placed := false
	for _, k := range n.keys {
		if k == key {
			children = append(children, Child[K, V]{Key: k, Node: next})
			placed = true
			continue
		}
		children = append(children, Child[K, V]{Key: k, Node: n.kids[k]})
	}
	if !placed {
		children = append(children, Child[K, V]{Key: key, Node: next})
	}
	return b.Build(n.value, children, n.def)
}

func (b *Builder[K, V]) mergeNodes(old, in *Node[K, V]) *Node[K, V] {
	value := in.value
	if value == nil {
		value = old.value
	}
	def := in.def
	if def == nil {
		def = old.def
	}
	children := make([]Child[K, V], 0, len(old.keys)+len(in.keys))
	for _, k := range old.keys {
		oc := old.kids[k]
		if ic, ok := in.Get(k); ok {
			oc = b.mergeNodes(oc, ic)
		}
		children = append(children, Child[K, V]{Key: k, Node: oc})
	}
	for _, k := range in.keys {
		if old.Contains(k) {
			continue
		}
		children = append(children, Child[K, V]{Key: k, Node: in.kids[k]})
	}
	return b.Build(value, children, def)
}

// Remove returns a new tree without key. The removed child, if
// navigable, is detached in place; this is the only aliasing mutation
// besides attach. A missing key returns the tree unchanged.
func (b *Builder[K, V]) Remove(n *Node[K, V], key K) *Node[K, V] {
	child, ok := n.Get(key)
	if !ok {
		return n
	}
	child.detach()
	children := make([]Child[K, V], 0, len(n.keys)-1)
	for _, k := range n.keys {
		if k == key {
			continue
		}
		children = append(children, Child[K, V]{Key: k, Node: n.kids[k]})
	}
	return b.Build(n.value, children, n.def)
}
