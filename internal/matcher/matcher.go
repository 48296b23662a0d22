package matcher

// Matcher tests one log line against a compiled expression or pattern set.
// Implementations are immutable after construction and hold no per-call
// state, so they are safe to share read-only.
type Matcher interface {
	// MatchLine reports whether the line matches. On a match it returns the
	// line with trailing line-terminator characters stripped.
	MatchLine(line string) (string, bool)

	// Description is a human-readable summary of what this matcher selects,
	// suitable for an output header.
	Description() string

	// Patterns returns the expression or pattern strings the matcher was
	// built from, in their original order.
	Patterns() []string
}
