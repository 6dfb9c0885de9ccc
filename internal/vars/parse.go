package vars

import (
	"regexp"
	"strings"
)

// assignmentRe matches an identifier followed by '='. Only the first
// '=' separates key from value; the value may contain further '='
// characters.
var assignmentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// Parse converts block lines into an ordered Set. Each line is trimmed
// of surrounding whitespace first. Blank lines and '#' comments are
// skipped silently; lines failing the assignment grammar are returned
// as Malformed diagnostics and skipped. Values keep everything after
// the first '=', minus at most one layer of matching surrounding
// quotes.
func Parse(lines []string) (Set, []Malformed) {
	var set Set
	var malformed []Malformed

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !assignmentRe.MatchString(line) {
			malformed = append(malformed, Malformed{Line: i + 1, Text: line})
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		set = append(set, Pair{Key: key, Value: unquote(value)})
	}

	return set, malformed
}

// unquote strips one layer of matching surrounding quotes. A lone quote
// character is not stripped against itself, and interior characters are
// never unescaped.
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
		return v[1 : len(v)-1]
	}
	return v
}
