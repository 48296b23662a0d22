package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"logsift/internal/matcher"
)

// Sink receives matched lines in file order, one at a time.
type Sink interface {
	WriteMatch(line string) error
}

// Stats summarizes one scan.
type Stats struct {
	Lines   int
	Matches int
}

// Scanner streams a log source line by line through a Matcher, forwarding
// each match to the sink before the next line is read. At most one line is
// buffered at a time; errors from the reader or the sink abort the scan.
type Scanner struct {
	matcher matcher.Matcher

	// Field, when non-empty, is a gjson path: each line is treated as a JSON
	// document and matching runs against the extracted field, while the full
	// raw line is what gets forwarded. Lines that are not JSON or lack the
	// field never match.
	Field string
}

// NewScanner creates a scanner around a compiled matcher.
func NewScanner(m matcher.Matcher) *Scanner {
	return &Scanner{matcher: m}
}

const maxLineBytes = 1024 * 1024

// Scan reads r to EOF, testing every line exactly once in order.
func (s *Scanner) Scan(r io.Reader, sink Sink) (Stats, error) {
	var stats Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		stats.Lines++

		out, ok := s.matchLine(sc.Text())
		if !ok {
			continue
		}
		if err := sink.WriteMatch(out); err != nil {
			return stats, fmt.Errorf("write match: %w", err)
		}
		stats.Matches++
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return stats, fmt.Errorf("log line too long (>%d bytes): %w", maxLineBytes, err)
		}
		return stats, fmt.Errorf("read log: %w", err)
	}
	return stats, nil
}

func (s *Scanner) matchLine(line string) (string, bool) {
	if s.Field == "" {
		return s.matcher.MatchLine(line)
	}

	if !gjson.Valid(line) {
		return "", false
	}
	field := gjson.Get(line, s.Field)
	if !field.Exists() {
		return "", false
	}
	if _, ok := s.matcher.MatchLine(field.String()); !ok {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
