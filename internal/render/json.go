package render

import (
	"strings"

	"github.com/alanmeadows/prvars/internal/vars"
)

// jsonEscaper escapes backslash and double-quote only. Control
// characters pass through untouched, so a value holding a literal
// newline produces output a strict JSON parser rejects. That is the
// consuming pipeline's long-standing contract; do not extend the
// escaping here.
var jsonEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// JSON renders the set as a single-line object literal, for example
// {"k1":"v1","k2":"v2"}. The empty set renders as {}. Duplicate keys
// are emitted in order; a JSON consumer will see the later value win.
func JSON(set vars.Set) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(jsonEscaper.Replace(p.Key))
		b.WriteString(`":"`)
		b.WriteString(jsonEscaper.Replace(p.Value))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
