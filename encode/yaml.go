package encode

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/trie"
)

// yamlEntry is the on-disk shape of one flat-form entry.
type yamlEntry[V any] struct {
	Path  []string `yaml:"path"`
	Value V        `yaml:"value"`
}

// YAML marshals the canonical flat form of a string-keyed tree.
func YAML[V any](n *trie.Node[string, V]) ([]byte, error) {
	flat := trie.Flatten(n)
	entries := make([]yamlEntry[V], 0, len(flat))
	for _, e := range flat {
		entries = append(entries, yamlEntry[V]{Path: e.Path, Value: e.Value})
	}
	return yaml.Marshal(entries)
}

// FromYAML unmarshals a flat form produced by YAML and deepens it
// through b. The usual flat-form policies apply: duplicate paths keep
// the last value, non-significant branches never materialize.
func FromYAML[V any](b *trie.Builder[string, V], data []byte) (*trie.Node[string, V], error) {
	var entries []yamlEntry[V]
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding flat form: %w", err)
	}
	flat := make([]trie.Entry[string, V], 0, len(entries))
	for _, e := range entries {
		flat = append(flat, trie.Entry[string, V]{Path: e.Path, Value: e.Value})
	}
	return b.Deepen(flat), nil
}
