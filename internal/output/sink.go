package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Sink is the destination for matched lines. It is opened once for a whole
// scan and must be closed on every exit path.
type Sink interface {
	WriteMatch(line string) error
	Close() error
}

// FileSink writes matches to a file, preceded by a one-line header naming
// the patterns the scan used.
type FileSink struct {
	f *os.File
	w *bufio.Writer
}

// NewFileSink creates (or truncates) the output file and writes the header.
func NewFileSink(path, description string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "Patterns used: %s\n", description); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &FileSink{f: f, w: w}, nil
}

// WriteMatch appends one matched line, re-appending the line terminator.
func (s *FileSink) WriteMatch(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Close flushes buffered matches and releases the file handle.
func (s *FileSink) Close() error {
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// StreamSink writes matches to a stream, usually stdout. With color enabled
// each match is rendered through the match style.
type StreamSink struct {
	w     io.Writer
	color bool
}

// NewStreamSink creates a sink around an existing writer. The writer is not
// owned by the sink; Close is a no-op.
func NewStreamSink(w io.Writer, color bool) *StreamSink {
	return &StreamSink{w: w, color: color}
}

func (s *StreamSink) WriteMatch(line string) error {
	if s.color {
		line = Styles.Match.Render(line)
	}
	_, err := fmt.Fprintln(s.w, line)
	return err
}

func (s *StreamSink) Close() error {
	return nil
}
