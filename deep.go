package trie

// VisitOrder selects when a node is visited relative to its children.
type VisitOrder int

const (
	// TopFirst visits a node before descending into its children.
	TopFirst VisitOrder = iota
	// BottomFirst visits a node after its children.
	BottomFirst
)

func (o VisitOrder) String() string {
	switch o {
	case TopFirst:
		return "topFirst"
	case BottomFirst:
		return "bottomFirst"
	}
	return "unknown"
}

// Visit receives a node and its key path relative to the traversal
// root. The path slice is owned by the callee and valid after return.
type Visit[K comparable, V any] func(path []K, n *Node[K, V])

// DeepForEach walks the physical structure of root in the given order,
// visiting each node exactly once. An identity seen-set is threaded
// through the recursion: a node reached again through a back-edge or a
// self-loop is elided, so traversal terminates on cyclic trees.
// Default functions are not consulted.
func DeepForEach[K comparable, V any](root *Node[K, V], order VisitOrder, visit Visit[K, V]) {
	if root == nil {
		return
	}
	seen := make(map[*Node[K, V]]bool)
	deepWalk(root, nil, order, visit, seen)
}

func deepWalk[K comparable, V any](n *Node[K, V], path []K, order VisitOrder, visit Visit[K, V], seen map[*Node[K, V]]bool) {
	if seen[n] {
		return
	}
	seen[n] = true
	if order == TopFirst {
		visit(pathCopy(path), n)
	}
	for _, k := range n.keys {
		deepWalk(n.kids[k], append(path[:len(path):len(path)], k), order, visit, seen)
	}
	if order == BottomFirst {
		visit(pathCopy(path), n)
	}
}

// DeepFoldLeft folds op over the nodes of root in the given order,
// with the same cycle-eliding guarantee as DeepForEach.
func DeepFoldLeft[K comparable, V, A any](root *Node[K, V], z A, order VisitOrder, op func(acc A, path []K, n *Node[K, V]) A) A {
	acc := z
	DeepForEach(root, order, func(path []K, n *Node[K, V]) {
		acc = op(acc, path, n)
	})
	return acc
}

func pathCopy[K comparable](path []K) []K {
	out := make([]K, len(path))
	copy(out, path)
	return out
}
