package trie

// NavMode selects how a tree family maintains parent back-references.
type NavMode int

const (
	// NavNone builds plain trees with no parent pointers.
	NavNone NavMode = iota
	// NavUnsafe attaches children in place. Sharing a subtree under
	// two parents leaves only the most recent attach intact.
	NavUnsafe
	// NavSafe deep-copies each child on attach, so every instance has
	// exactly one correct parent, at the cost of an O(size) copy.
	NavSafe
)

func (m NavMode) String() string {
	switch m {
	case NavNone:
		return "none"
	case NavUnsafe:
		return "unsafe"
	case NavSafe:
		return "safe"
	}
	return "unknown"
}

// MergePolicy selects what Update does when a key is already present.
type MergePolicy int

const (
	// Replace discards the old subtree at the updated key.
	Replace MergePolicy = iota
	// Merge recursively combines the old and the incoming subtree.
	Merge
)

// Child is a (key, subtree) pair handed to Build.
type Child[K comparable, V any] struct {
	Key  K
	Node *Node[K, V]
}

type config struct {
	stripEmpty bool
	nav        NavMode
	merge      MergePolicy
}

// Option configures a Builder.
type Option func(*config)

// WithStripEmpty makes Build omit non-significant children.
func WithStripEmpty(v bool) Option {
	return func(c *config) { c.stripEmpty = v }
}

// WithNav selects the navigable mode of the tree family.
func WithNav(m NavMode) Option {
	return func(c *config) { c.nav = m }
}

// WithMergePolicy selects the Update policy of the tree family.
func WithMergePolicy(p MergePolicy) Option {
	return func(c *config) { c.merge = p }
}

// Builder constructs nodes of one tree family. All construction goes
// through Build, so sharing and emptiness policy live in one place.
// A Builder is configured once and must not be reconfigured after the
// first node is built.
type Builder[K comparable, V any] struct {
	cfg   config
	empty *Node[K, V]
}

// NewBuilder returns a Builder for a tree family with the given
// configuration.
func NewBuilder[K comparable, V any](opts ...Option) *Builder[K, V] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Builder[K, V]{cfg: cfg}
	b.empty = &Node[K, V]{}
	if cfg.nav != NavNone {
		b.empty.nav = &navState[K, V]{}
	}
	return b
}

// Nav returns the builder's navigable mode.
func (b *Builder[K, V]) Nav() NavMode {
	return b.cfg.nav
}

// Empty returns the canonical empty node of this builder. Build
// returns the same instance for an empty construction; this identity
// is a sharing optimization, not an equality guarantee.
func (b *Builder[K, V]) Empty() *Node[K, V] {
	return b.empty
}

// Build constructs a node from an optional value, ordered children and
// an optional default function. Duplicate child keys keep the position
// of the first occurrence and the node of the last. Under
// WithStripEmpty, non-significant children are omitted.
func (b *Builder[K, V]) Build(value *V, children []Child[K, V], def func(K) *Node[K, V]) *Node[K, V] {
	kept := children[:0:0]
	for _, c := range children {
		if c.Node == nil {
			continue
		}
		if b.cfg.stripEmpty && c.Node.IsNonSignificant() {
			continue
		}
		kept = append(kept, c)
	}
	if value == nil && len(kept) == 0 && def == nil {
		return b.empty
	}
	n := &Node[K, V]{
		value: value,
		keys:  make([]K, 0, len(kept)),
		kids:  make(map[K]*Node[K, V], len(kept)),
		def:   def,
	}
	for _, c := range kept {
		if _, dup := n.kids[c.Key]; !dup {
			n.keys = append(n.keys, c.Key)
		}
		n.kids[c.Key] = c.Node
	}
	if b.cfg.nav != NavNone {
		n.nav = &navState[K, V]{}
		b.initNav(n)
	}
	return n
}

// Leaf builds a node holding just a value.
func (b *Builder[K, V]) Leaf(v V) *Node[K, V] {
	return b.Build(&v, nil, nil)
}

// WithValue rebuilds a node with a new value, preserving children and
// default.
func (b *Builder[K, V]) WithValue(n *Node[K, V], value *V) *Node[K, V] {
	return b.Build(value, n.Children(), n.def)
}

// WithDefault rebuilds a node with a new default function, preserving
// value and children.
func (b *Builder[K, V]) WithDefault(n *Node[K, V], def func(K) *Node[K, V]) *Node[K, V] {
	return b.Build(n.value, n.Children(), def)
}

// Constant builds a tree equal to v at every possible key path. The
// node is its own default, tying the knot through the closure instead
// of recursing eagerly.
func (b *Builder[K, V]) Constant(v V) *Node[K, V] {
	n := &Node[K, V]{value: &v}
	if b.cfg.nav != NavNone {
		n.nav = &navState[K, V]{}
	}
	n.def = func(K) *Node[K, V] { return n }
	return n
}
