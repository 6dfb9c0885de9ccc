package render

import (
	"strings"

	"github.com/alanmeadows/prvars/internal/vars"
)

// Env renders one KEY=VALUE line per pair, verbatim, with no quoting
// or escaping added. Serves both the env and dotenv selectors. The
// empty set renders as an empty string.
func Env(set vars.Set) string {
	lines := make([]string, len(set))
	for i, p := range set {
		lines[i] = p.Key + "=" + p.Value
	}
	return strings.Join(lines, "\n")
}

// Shell renders one "export KEY=VALUE" line per pair, verbatim. The
// empty set renders as an empty string.
func Shell(set vars.Set) string {
	lines := make([]string, len(set))
	for i, p := range set {
		lines[i] = "export " + p.Key + "=" + p.Value
	}
	return strings.Join(lines, "\n")
}
