package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternError reports a regular expression that failed to compile. It is
// raised at matcher construction, never at match time.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// RegexMatcher matches lines against an alternation of regular expressions.
// The patterns are combined into a single compiled regexp; a line matches
// when the pattern is found anywhere in it (unanchored).
type RegexMatcher struct {
	pattern  *regexp.Regexp
	patterns []string
}

// NewRegexMatcher compiles the alternation up front. Each pattern is compiled
// individually first so a PatternError names the offending pattern rather
// than the combined alternation.
func NewRegexMatcher(patterns []string, ignoreCase bool) (*RegexMatcher, error) {
	groups := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if _, err := regexp.Compile(p); err != nil {
			return nil, &PatternError{Pattern: p, Err: err}
		}
		groups = append(groups, "(?:"+p+")")
	}

	combined := strings.Join(groups, "|")
	if ignoreCase {
		combined = "(?i)" + combined
	}
	re, err := regexp.Compile(combined)
	if err != nil {
		// Individually valid patterns can still fail in combination only
		// through the alternation wrapper itself; surface the whole set.
		return nil, &PatternError{Pattern: combined, Err: err}
	}

	return &RegexMatcher{pattern: re, patterns: patterns}, nil
}

// MatchLine returns the trimmed line when the compiled alternation matches
// anywhere in it. The line terminator is stripped before matching so that
// $-anchored patterns see the end of the line, not the newline.
func (m *RegexMatcher) MatchLine(line string) (string, bool) {
	trimmed := strings.TrimRight(line, "\r\n")
	if !m.pattern.MatchString(trimmed) {
		return "", false
	}
	return trimmed, true
}

// Description lists the source patterns.
func (m *RegexMatcher) Description() string {
	return strings.Join(m.patterns, ", ")
}

// Patterns returns the original pattern strings in order.
func (m *RegexMatcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}
