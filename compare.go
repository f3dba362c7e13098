package trie

// Equal reports structural equality of two trees with comparable
// values, up to child ordering.
func Equal[K, V comparable](a, b *Node[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc reports structural equality of two trees under eq,
// ignoring child order. Self-referential trees compare structurally up
// to the visited pair-set: a revisited pair is taken as equal, so the
// comparison terminates on cycles. Default functions are compared by
// presence only, since function values have no useful equality.
func EqualFunc[K comparable, V any](a, b *Node[K, V], eq func(V, V) bool) bool {
	return equalNodes(a, b, eq, make(map[nodePair[K, V]]bool))
}

type nodePair[K comparable, V any] struct {
	a, b *Node[K, V]
}

func equalNodes[K comparable, V any](a, b *Node[K, V], eq func(V, V) bool, seen map[nodePair[K, V]]bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	p := nodePair[K, V]{a, b}
	if seen[p] {
		return true
	}
	seen[p] = true

	if (a.value == nil) != (b.value == nil) {
		return false
	}
	if a.value != nil && !eq(*a.value, *b.value) {
		return false
	}
	if (a.def == nil) != (b.def == nil) {
		return false
	}
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, k := range a.keys {
		bc, ok := b.kids[k]
		if !ok {
			return false
		}
		if !equalNodes(a.kids[k], bc, eq, seen) {
			return false
		}
	}
	return true
}
