// Package pipeline runs the extract → parse → render sequence over a
// single text blob.
package pipeline

import (
	"log/slog"

	"github.com/alanmeadows/prvars/internal/block"
	"github.com/alanmeadows/prvars/internal/render"
	"github.com/alanmeadows/prvars/internal/vars"
)

// Run extracts the fenced ENV block from input, parses its assignment
// lines, and renders them in the requested format. An absent block is
// success with the format's empty representation. Malformed lines are
// logged and skipped. The only error is an unknown format selector,
// which fails before any extraction happens.
func Run(input, format string) (string, error) {
	renderFn, err := render.Lookup(format)
	if err != nil {
		return "", err
	}

	lines, ok := block.Extract(input)
	if !ok {
		slog.Info("no ENV block found, emitting empty result", "format", format)
		return renderFn(nil), nil
	}

	set, malformed := vars.Parse(lines)
	for _, m := range malformed {
		slog.Warn("skipping malformed line", "line", m.Line, "text", m.Text)
	}
	if len(set) == 0 {
		slog.Info("found ENV block with zero variables", "format", format)
	} else {
		slog.Info("parsed ENV block", "variables", len(set), "skipped", len(malformed), "format", format)
	}

	return renderFn(set), nil
}
