// Package output appends named results to a CI key/value output file,
// the integration point a downstream workflow step reads its variables
// from.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Append writes name=value to the output file at path using
// heredoc-style framing:
//
//	name<<ghadelimiter_<uuid>
//	value
//	ghadelimiter_<uuid>
//
// so multi-line values survive as a single output variable. The file
// is created if missing and appended to otherwise.
func Append(path, name, value string) error {
	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("output value for %q contains its own delimiter", name)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	return f.Close()
}
