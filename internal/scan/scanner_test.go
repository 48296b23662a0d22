package scan

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logsift/internal/matcher"
)

type captureSink struct {
	lines []string
	err   error
}

func (s *captureSink) WriteMatch(line string) error {
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, line)
	return nil
}

const sampleLog = `Jun 15 02:04:59 combo sshd(pam_unix)[20882]: authentication failure; rhost=218.188.2.4
Jun 15 04:06:18 combo su(pam_unix)[21416]: session opened for user cyrus
Jun 17 07:07:00 combo kernel: Linux version 2.6.5-1.358 (bhcompile@bugs.build.redhat.com)
Jun 22 04:11:09 combo kernel: warning: many lost ticks
Jun 22 04:11:10 combo kernel: Your time source seems to be instable
`

func TestScannerScan(t *testing.T) {
	t.Run("forwards matches in file order", func(t *testing.T) {
		m, err := matcher.NewExpressionMatcher([]string{"kernel"}, false)
		require.NoError(t, err)

		sink := &captureSink{}
		stats, err := NewScanner(m).Scan(strings.NewReader(sampleLog), sink)
		require.NoError(t, err)

		assert.Equal(t, 5, stats.Lines)
		assert.Equal(t, 3, stats.Matches)
		require.Len(t, sink.lines, 3)
		assert.Contains(t, sink.lines[0], "Linux version")
		assert.Contains(t, sink.lines[1], "lost ticks")
		assert.Contains(t, sink.lines[2], "time source")
	})

	t.Run("no matches yields empty sink", func(t *testing.T) {
		m, err := matcher.NewExpressionMatcher([]string{"nosuchword"}, false)
		require.NoError(t, err)

		sink := &captureSink{}
		stats, err := NewScanner(m).Scan(strings.NewReader(sampleLog), sink)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Matches)
		assert.Empty(t, sink.lines)
	})

	t.Run("rescanning yields identical matches", func(t *testing.T) {
		m, err := matcher.NewRegexMatcher([]string{`Linux version 2\.6\.5-1\.\d`, `cyrus$`}, true)
		require.NoError(t, err)
		s := NewScanner(m)

		first := &captureSink{}
		_, err = s.Scan(strings.NewReader(sampleLog), first)
		require.NoError(t, err)

		second := &captureSink{}
		_, err = s.Scan(strings.NewReader(sampleLog), second)
		require.NoError(t, err)

		assert.Equal(t, first.lines, second.lines)
		assert.Len(t, first.lines, 2)
	})

	t.Run("sink error aborts the scan", func(t *testing.T) {
		m, err := matcher.NewExpressionMatcher([]string{"combo"}, false)
		require.NoError(t, err)

		sinkErr := errors.New("disk full")
		sink := &captureSink{err: sinkErr}
		stats, err := NewScanner(m).Scan(strings.NewReader(sampleLog), sink)
		require.Error(t, err)
		assert.ErrorIs(t, err, sinkErr)
		assert.Equal(t, 1, stats.Lines)
		assert.Equal(t, 0, stats.Matches)
	})

	t.Run("field extraction matches against JSON field", func(t *testing.T) {
		ndjson := `{"level":"error","message":"connection refused"}
{"level":"info","message":"listening on :8080"}
not json at all
{"level":"error","detail":"no message field"}
`
		m, err := matcher.NewExpressionMatcher([]string{"refused || listening"}, false)
		require.NoError(t, err)

		s := NewScanner(m)
		s.Field = "message"

		sink := &captureSink{}
		stats, err := s.Scan(strings.NewReader(ndjson), sink)
		require.NoError(t, err)

		assert.Equal(t, 4, stats.Lines)
		require.Len(t, sink.lines, 2)
		// The full raw line is forwarded, not the extracted field.
		assert.Equal(t, `{"level":"error","message":"connection refused"}`, sink.lines[0])
		assert.Equal(t, `{"level":"info","message":"listening on :8080"}`, sink.lines[1])
	})
}
