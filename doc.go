// Package trie implements a generic prefix tree: a recursive, keyed,
// hierarchical container in which every node optionally holds a value,
// maps child keys to child nodes in insertion order, and may carry a
// default function supplying a synthetic child for any key not
// physically present.
//
// Nodes are created through a Builder and are value-like afterwards:
// all transforms (Map, FlatMap, Update, Zip, ...) return new trees and
// re-enter the Builder so that empty-node canonicalization, empty-branch
// stripping and navigability are decided in exactly one place.
//
// # Building
//
//	b := trie.NewBuilder[string, int]()
//	one := 1
//	t := b.Build(nil, []trie.Child[string, int]{
//	    {Key: "a", Node: b.Leaf(one)},
//	}, nil)
//
// # Defaults
//
// A default function makes a tree total over its key space. Constant
// builds a tree that is its own default, so it is equal to a single
// value at every possible path:
//
//	c := b.Constant(3)
//	n, _ := c.At("a", "b", "c") // value 3, no recursion happened
//
// # Navigable trees
//
// Builders configured with WithNav attach a parent back-reference to
// every child at construction time. NavUnsafe shares subtrees and the
// last attach wins, which corrupts the parent pointer of a subtree
// placed under two parents; NavSafe deep-copies each child on attach so
// every instance has exactly one correct parent. This hazard is part of
// the contract, see the package tests.
//
// # Cycles
//
// Navigable trees (and defaulted trees) can be cyclic. DeepForEach and
// DeepFoldLeft thread an identity seen-set through the walk and elide
// nodes already visited, so traversal terminates on self-referential
// trees. Map, Flatten and friends assume finite physical structure.
package trie
