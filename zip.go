package trie

import (
	"errors"

	"github.com/signadot/trie/debug"
)

// Zip co-traverses left and other, driven by left's physical children,
// and combines the node pair at each level with op (nil result means
// no value at that node). Under strict matching a child is pruned
// before recursing when other lacks the key physically; under lenient
// matching other's default is consulted and only a genuine
// ErrKeyNotFound prunes. A pruned branch is expected control flow, not
// an error. The result's default is the builder's own, never zipped.
func Zip[K comparable, V, W, R any](b *Builder[K, R], left *Node[K, V], other *Node[K, W], strict bool, op func(other *Node[K, W], left *Node[K, V]) *R) *Node[K, R] {
	value := op(other, left)
	children := make([]Child[K, R], 0, len(left.keys))
	for _, k := range left.keys {
		oc, ok := zipLookup(other, k, strict)
		if !ok {
			if debug.Zip() {
				debug.Logf("zip: prune %v (strict=%v)\n", k, strict)
			}
			continue
		}
		children = append(children, Child[K, R]{
			Key:  k,
			Node: Zip(b, left.kids[k], oc, strict, op),
		})
	}
	return b.Build(value, children, nil)
}

// zipLookup resolves the companion child for a key. Strict matching
// uses Get only; lenient matching follows the default and downgrades
// ErrKeyNotFound to a pruning decision.
func zipLookup[K comparable, W any](other *Node[K, W], k K, strict bool) (*Node[K, W], bool) {
	if strict {
		return other.Get(k)
	}
	oc, err := other.Apply(k)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return oc, true
}

// Op2 combines a companion node and a left node into an optional
// result value, as one entry of a Zip2 operator tree.
type Op2[K comparable, V, W, R any] func(other *Node[K, W], left *Node[K, V]) *R

// Zip2 is Zip with a per-key combining operator, supplied by a third
// tree walked alongside. A node of ops without a value yields no value
// at the corresponding result node, but traversal continues into
// children. The operator tree's children resolve through Apply, so a
// Constant operator tree recovers plain Zip. Under lenient matching a
// key missing from ops continues with an empty operator subtree; under
// strict matching it prunes.
func Zip2[K comparable, V, W, R any](b *Builder[K, R], left *Node[K, V], other *Node[K, W], ops *Node[K, Op2[K, V, W, R]], strict bool) *Node[K, R] {
	var value *R
	if ops.value != nil {
		value = (*ops.value)(other, left)
	}
	children := make([]Child[K, R], 0, len(left.keys))
	for _, k := range left.keys {
		oc, ok := zipLookup(other, k, strict)
		if !ok {
			continue
		}
		opc, err := ops.Apply(k)
		if err != nil {
			if strict {
				continue
			}
			opc = &Node[K, Op2[K, V, W, R]]{}
		}
		children = append(children, Child[K, R]{
			Key:  k,
			Node: Zip2(b, left.kids[k], oc, opc, strict),
		})
	}
	return b.Build(value, children, nil)
}

// OpFull combines a key and a node pair into a remapped key, an
// optional result value, and a keep flag. Returning keep=false
// excludes the whole branch: no key, no subtree.
type OpFull[K comparable, V, W any, L comparable, R any] func(k K, other *Node[K, W], left *Node[K, V]) (L, *R, bool)

// ZipFull is the most general zip: operators remap the key type and
// decide whether a subtree survives. k0 stands in for the root's key,
// which does not exist in the tree itself. A node of ops without an
// operator excludes the branch, since nothing can name it in the new
// key space; at the root this yields the empty tree.
func ZipFull[K comparable, V, W any, L comparable, R any](b *Builder[L, R], k0 K, left *Node[K, V], other *Node[K, W], strict bool, ops *Node[K, OpFull[K, V, W, L, R]]) *Node[L, R] {
	node, _, ok := zipFullAt(b, k0, left, other, strict, ops)
	if !ok {
		return b.Empty()
	}
	return node
}

func zipFullAt[K comparable, V, W any, L comparable, R any](b *Builder[L, R], k K, left *Node[K, V], other *Node[K, W], strict bool, ops *Node[K, OpFull[K, V, W, L, R]]) (*Node[L, R], L, bool) {
	var zero L
	if ops.value == nil {
		return nil, zero, false
	}
	newKey, value, keep := (*ops.value)(k, other, left)
	if !keep {
		if debug.Zip() {
			debug.Logf("zipFull: exclude branch at %v\n", k)
		}
		return nil, zero, false
	}
	children := make([]Child[L, R], 0, len(left.keys))
	for _, ck := range left.keys {
		oc, ok := zipLookup(other, ck, strict)
		if !ok {
			continue
		}
		opc, err := ops.Apply(ck)
		if err != nil {
			continue
		}
		sub, subKey, ok := zipFullAt(b, ck, left.kids[ck], oc, strict, opc)
		if !ok {
			continue
		}
		children = append(children, Child[L, R]{Key: subKey, Node: sub})
	}
	return b.Build(value, children, nil), newKey, true
}
