package trie

import (
	"fmt"
	"strings"
)

// Node is a prefix tree node. The zero Node is not useful; nodes are
// created through a Builder, which decides empty-branch stripping,
// canonical-empty sharing and navigability for the whole tree family.
//
// A Node is immutable once built, with one exception: the navigable
// parent back-reference, which mutates on attach and detach.
type Node[K comparable, V any] struct {
	value *V
	keys  []K
	kids  map[K]*Node[K, V]
	def   func(K) *Node[K, V]
	nav   *navState[K, V]
}

// Value returns the payload stored at this node, if any.
func (n *Node[K, V]) Value() (V, bool) {
	if n.value == nil {
		var zero V
		return zero, false
	}
	return *n.value, true
}

// HasValue reports whether the node carries a payload.
func (n *Node[K, V]) HasValue() bool {
	return n.value != nil
}

// HasDefault reports whether the node carries a default function.
func (n *Node[K, V]) HasDefault() bool {
	return n.def != nil
}

// Len returns the number of physical children.
func (n *Node[K, V]) Len() int {
	return len(n.keys)
}

// Keys returns the child keys in insertion order.
func (n *Node[K, V]) Keys() []K {
	out := make([]K, len(n.keys))
	copy(out, n.keys)
	return out
}

// Children returns the (key, child) pairs in insertion order.
func (n *Node[K, V]) Children() []Child[K, V] {
	out := make([]Child[K, V], 0, len(n.keys))
	for _, k := range n.keys {
		out = append(out, Child[K, V]{Key: k, Node: n.kids[k]})
	}
	return out
}

// Get returns the physically stored child for key. The default
// function is not consulted.
func (n *Node[K, V]) Get(key K) (*Node[K, V], bool) {
	c, ok := n.kids[key]
	return c, ok
}

// Contains reports whether key is physically present.
func (n *Node[K, V]) Contains(key K) bool {
	_, ok := n.kids[key]
	return ok
}

// IsDefinedAt reports whether Apply would resolve key, either through
// a physical child or through the default function.
func (n *Node[K, V]) IsDefinedAt(key K) bool {
	if _, ok := n.kids[key]; ok {
		return true
	}
	return n.def != nil
}

// Apply resolves key: the physical child if present, else the default
// function's synthetic child, else ErrKeyNotFound.
func (n *Node[K, V]) Apply(key K) (*Node[K, V], error) {
	if c, ok := n.kids[key]; ok {
		return c, nil
	}
	if n.def != nil {
		return n.def(key), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// At resolves a key path from this node, consulting defaults along the
// way. An empty path returns the node itself.
func (n *Node[K, V]) At(keys ...K) (*Node[K, V], error) {
	cur := n
	for _, k := range keys {
		next, err := cur.Apply(k)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// IsNonSignificant reports whether the node carries no value, no
// children and no default. Builders configured with WithStripEmpty
// omit such nodes on construction, and Flatten never records them.
func (n *Node[K, V]) IsNonSignificant() bool {
	return n.value == nil && len(n.keys) == 0 && n.def == nil
}

// String renders the node one level deep, for debugging.
func (n *Node[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	if n.value != nil {
		fmt.Fprintf(&sb, "value: %v", *n.value)
	}
	for i, k := range n.keys {
		if i > 0 || n.value != nil {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: ..", k)
	}
	if n.def != nil {
		if n.value != nil || len(n.keys) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("*: ..")
	}
	sb.WriteByte('}')
	return sb.String()
}
