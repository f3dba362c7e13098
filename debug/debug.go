package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Zip    bool
	Flat   bool
	Nav    bool
	Stream bool
	Diff   bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Zip = boolEnv("TRIE_DEBUG_ZIP")
	d.Flat = boolEnv("TRIE_DEBUG_FLAT")
	d.Nav = boolEnv("TRIE_DEBUG_NAV")
	d.Stream = boolEnv("TRIE_DEBUG_STREAM")
	d.Diff = boolEnv("TRIE_DEBUG_DIFF")
	d.Query = boolEnv("TRIE_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Zip() bool {
	return d.Zip
}
func Flat() bool {
	return d.Flat
}
func Nav() bool {
	return d.Nav
}
func Stream() bool {
	return d.Stream
}
func Diff() bool {
	return d.Diff
}
func Query() bool {
	return d.Query
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
