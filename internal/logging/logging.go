// Package logging configures the process-wide diagnostic logger. The
// output contract reserves stdout for the serialized variable set a
// downstream step consumes, so every diagnostic — block notices,
// malformed-line warnings, errors — goes to stderr.
package logging

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Setup installs a charmbracelet/log handler behind the global slog
// logger, writing to stderr. In CI stderr is not a terminal, so records
// come out as JSON lines a workflow log viewer can fold; on a terminal
// they stay human-readable.
func Setup(verbose bool) {
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	})

	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler.SetLevel(level)

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		handler.SetFormatter(charmlog.JSONFormatter)
	}

	slog.SetDefault(slog.New(handler))
}
