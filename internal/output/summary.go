package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Summary describes one finished scan for reporting.
type Summary struct {
	Mode     string
	Patterns []string
	Lines    int
	Matches  int
	Output   string
}

// Render writes the summary as a small two-column table.
func (s Summary) Render(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"FIELD", "VALUE"})

	rows := [][]string{
		{"mode", s.Mode},
		{"patterns", strings.Join(s.Patterns, ", ")},
		{"lines scanned", strconv.Itoa(s.Lines)},
		{"lines matched", strconv.Itoa(s.Matches)},
	}
	if s.Output != "" {
		rows = append(rows, []string{"output", s.Output})
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
