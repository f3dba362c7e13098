// Package query selects flat-form entries of a string-keyed tree with
// compiled expressions. An expression sees the environment
//
//	path  []string  full key path of the entry
//	key   string    last key of the path, "" at the root
//	value any       the entry's value
//	depth int       len(path)
//
// and must evaluate to a boolean.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/trie"
	"github.com/signadot/trie/debug"
)

// Program is a compiled selection predicate.
type Program struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a predicate over flat-form entries.
func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, expr.Env(env(nil, nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Match runs the predicate on one (path, value) pair.
func (p *Program) Match(path []string, value any) (bool, error) {
	out, err := expr.Run(p.prg, env(path, value))
	if err != nil {
		return false, fmt.Errorf("running query %q: %w", p.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("query %q returned %T, want bool", p.src, out)
	}
	return b, nil
}

// Select returns the flat-form entries of n matching p, in top-first
// order.
func Select[V any](p *Program, n *trie.Node[string, V]) ([]trie.Entry[string, V], error) {
	var out []trie.Entry[string, V]
	for _, e := range trie.Flatten(n) {
		ok, err := p.Match(e.Path, e.Value)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	if debug.Query() {
		debug.Logf("query %q selected %d entries\n", p.src, len(out))
	}
	return out, nil
}

func env(path []string, value any) map[string]any {
	key := ""
	if len(path) > 0 {
		key = path[len(path)-1]
	}
	if path == nil {
		path = []string{}
	}
	return map[string]any{
		"path":  path,
		"key":   key,
		"value": value,
		"depth": len(path),
	}
}
