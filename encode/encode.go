// Package encode renders the canonical flat form of a tree as text,
// one path per line, optionally colorized for terminals, and
// round-trips the flat form through YAML.
package encode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/trie"
)

// Colors maps the parts of a rendered entry to sprint functions.
type Colors struct {
	Path  func(string, ...any) string
	Sep   func(string, ...any) string
	Value func(string, ...any) string
}

// NewColors returns the default color scheme.
func NewColors() *Colors {
	return &Colors{
		Path:  color.RGB(128, 168, 196).SprintfFunc(),
		Sep:   color.RGB(255, 0, 196).SprintfFunc(),
		Value: color.RGB(8, 196, 16).SprintfFunc(),
	}
}

type cfg struct {
	colors *Colors
	sep    string
}

// Opt configures Text.
type Opt func(*cfg)

// WithColors renders with the given color scheme; nil disables colors.
func WithColors(c *Colors) Opt {
	return func(e *cfg) { e.colors = c }
}

// WithPathSep sets the separator between path keys. Default ".".
func WithPathSep(sep string) Opt {
	return func(e *cfg) { e.sep = sep }
}

// AutoColors enables the default scheme when f is a terminal.
func AutoColors(f *os.File) Opt {
	return func(e *cfg) {
		if isatty.IsTerminal(f.Fd()) {
			e.colors = NewColors()
		}
	}
}

// Text writes the canonical flat form of n, one "path: value" line per
// entry in top-first order. The root value renders with an empty path.
func Text[K comparable, V any](w io.Writer, n *trie.Node[K, V], opts ...Opt) error {
	e := &cfg{sep: "."}
	for _, opt := range opts {
		opt(e)
	}
	for _, ent := range trie.Flatten(n) {
		parts := make([]string, len(ent.Path))
		for i, k := range ent.Path {
			parts[i] = fmt.Sprint(k)
		}
		path := strings.Join(parts, e.sep)
		value := fmt.Sprint(ent.Value)
		if e.colors != nil {
			path = e.colors.Path("%s", path)
			value = e.colors.Value("%s", value)
		}
		sep := ": "
		if e.colors != nil {
			sep = e.colors.Sep(": ")
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", path, sep, value); err != nil {
			return err
		}
	}
	return nil
}
