package render

import (
	"strings"

	"github.com/alanmeadows/prvars/internal/vars"
)

// yamlEscaper escapes double-quotes inside quoted scalars.
var yamlEscaper = strings.NewReplacer(`"`, `\"`)

// YAML renders one "KEY: VALUE" line per pair. Unlike the line-oriented
// env and shell formats, the empty set renders as the explicit empty
// mapping {}; that asymmetry is part of the output contract.
func YAML(set vars.Set) string {
	if len(set) == 0 {
		return "{}"
	}
	lines := make([]string, len(set))
	for i, p := range set {
		lines[i] = p.Key + ": " + yamlScalar(p.Value)
	}
	return strings.Join(lines, "\n")
}

// yamlScalar double-quotes a value when a YAML parser could otherwise
// misread it: whitespace or flow indicators, a leading digit, or an
// exact true/false/null match. Everything else is emitted bare.
func yamlScalar(v string) string {
	if needsQuoting(v) {
		return `"` + yamlEscaper.Replace(v) + `"`
	}
	return v
}

func needsQuoting(v string) bool {
	if v == "true" || v == "false" || v == "null" {
		return true
	}
	if v != "" && v[0] >= '0' && v[0] <= '9' {
		return true
	}
	return strings.ContainsAny(v, " \t\n\r:[]{}")
}
