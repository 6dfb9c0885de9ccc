// Package vars parses KEY=VALUE assignment lines from an extracted
// block into an ordered variable set.
package vars

// Pair is a single parsed assignment.
type Pair struct {
	Key   string
	Value string
}

// Set is an ordered sequence of pairs, in order of first appearance.
// Duplicate keys are not merged; both pairs stay in the sequence and a
// mapping-shaped output format may let the later one win.
type Set []Pair

// Malformed describes a block line that is neither blank, a comment,
// nor a valid identifier assignment. Malformed lines are skipped, never
// fatal.
type Malformed struct {
	Line int    // 1-based position within the block
	Text string // the trimmed offending line
}
