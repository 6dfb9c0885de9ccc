// Package render serializes an ordered variable set into one of the
// supported output formats.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alanmeadows/prvars/internal/vars"
)

// Func renders a variable set into one output format. Renderers are
// stateless; the returned string carries no trailing newline.
type Func func(vars.Set) string

// registry maps format selectors to renderers. Selectors are
// case-sensitive; env and dotenv are synonyms for the same renderer.
var registry = map[string]Func{
	"json":   JSON,
	"env":    Env,
	"dotenv": Env,
	"shell":  Shell,
	"yaml":   YAML,
}

// Lookup returns the renderer for selector. An unknown selector is a
// configuration error, not a fallback; the error names the supported
// formats.
func Lookup(selector string) (Func, error) {
	fn, ok := registry[selector]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", selector, strings.Join(Formats(), ", "))
	}
	return fn, nil
}

// Formats returns the supported selector names, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
