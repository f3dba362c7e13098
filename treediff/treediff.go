// Package treediff computes a structural diff of two trees over their
// canonical flat forms, reporting one delta per changed path. Changed
// values render a character-level patch through diffmatchpatch, the
// same engine the rest of the toolchain uses for string diffs.
package treediff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/trie"
	"github.com/signadot/trie/debug"
)

// Kind classifies a delta.
type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	}
	return "unknown"
}

// Delta is one difference between two trees: the path it occurred at,
// the rendered old and new values, and for Changed deltas a pretty
// character-level patch.
type Delta[K comparable] struct {
	Path  []K
	Kind  Kind
	From  string
	To    string
	Patch string
}

// Diff returns the deltas from one tree to another. Removed and
// Changed deltas come in from-order, Added deltas in to-order. Values
// compare by their rendered form.
func Diff[K comparable, V any](from, to *trie.Node[K, V]) []Delta[K] {
	fromFlat := trie.Flatten(from)
	toFlat := trie.Flatten(to)

	toVals := make(map[string]string, len(toFlat))
	for _, e := range toFlat {
		toVals[pathKey(e.Path)] = fmt.Sprint(e.Value)
	}
	fromSeen := make(map[string]bool, len(fromFlat))

	var out []Delta[K]
	for _, e := range fromFlat {
		pk := pathKey(e.Path)
		fromSeen[pk] = true
		fv := fmt.Sprint(e.Value)
		tv, ok := toVals[pk]
		if !ok {
			out = append(out, Delta[K]{Path: e.Path, Kind: Removed, From: fv})
			continue
		}
		if fv == tv {
			continue
		}
		out = append(out, Delta[K]{
			Path:  e.Path,
			Kind:  Changed,
			From:  fv,
			To:    tv,
			Patch: patchText(fv, tv),
		})
	}
	for _, e := range toFlat {
		if fromSeen[pathKey(e.Path)] {
			continue
		}
		out = append(out, Delta[K]{Path: e.Path, Kind: Added, To: fmt.Sprint(e.Value)})
	}
	if debug.Diff() {
		debug.Logf("treediff: %d deltas\n", len(out))
	}
	return out
}

func patchText(from, to string) string {
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, doMultiLine)
	return dmp.DiffPrettyText(diffs)
}

// pathKey renders a path into a collision-safe map key.
func pathKey[K comparable](path []K) string {
	var sb strings.Builder
	for _, k := range path {
		fmt.Fprintf(&sb, "%v\x1f", k)
	}
	return sb.String()
}
