package trie

import "errors"

var (
	// ErrKeyNotFound is returned by Apply and At when neither the
	// physical children nor the default function resolve a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIllegalStructure is returned when an operation requiring a
	// particular tree shape is misused, such as MapKeys over a
	// defaulted tree without an inverse.
	ErrIllegalStructure = errors.New("illegal tree structure")
)
