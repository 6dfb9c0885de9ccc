// Package block locates the fenced ENV block inside a free-form text
// blob, typically a pull request description.
package block

import "strings"

// Fence markers. Both must be the entire line: no leading or trailing
// whitespace, no info string other than ENV.
const (
	openFence  = "```ENV"
	closeFence = "```"
)

// Block holds the verbatim lines found strictly between the fence
// markers, in order.
type Block []string

// Extract scans input line by line for the first fenced ENV block and
// returns its lines. The second return is false when no opening fence
// exists, or when an opening fence is never closed; a closed block with
// zero lines returns true with an empty Block. Anything after the first
// closing fence is ignored.
func Extract(input string) (Block, bool) {
	lines := strings.Split(input, "\n")

	start := -1
	for i, line := range lines {
		if line == openFence {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	for i := start; i < len(lines); i++ {
		if lines[i] == closeFence {
			return Block(lines[start:i]), true
		}
	}
	return nil, false
}
