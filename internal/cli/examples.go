package cli

import (
	"fmt"
)

// ExamplesCmd shows usage examples for logsift commands
type ExamplesCmd struct{}

// Example represents a single usage example
type Example struct {
	Command     string
	Description string
}

var scanExamples = []Example{
	{
		Command:     `logsift scan -f /var/log/syslog -p "error"`,
		Description: "Print every line containing the keyword",
	},
	{
		Command:     `logsift scan -f boot.log -p "Linux && May" -i`,
		Description: "Boolean expression, case-insensitive",
	},
	{
		Command:     `logsift scan -f boot.log -p "(warning OR error) AND NOT debug"`,
		Description: "Word operators and parentheses work too",
	},
	{
		Command:     `logsift scan -f boot.log -p "Linux" -p "warning"`,
		Description: "Multiple -p values are OR'd together",
	},
	{
		Command:     `logsift scan -f boot.log -r -p 'Linux version 2\.6\.5-1\.\d' -p 'Jones$'`,
		Description: "Regex mode: patterns are combined into one alternation",
	},
	{
		Command:     `logsift scan -f boot.log -p "panic" -o ./results/`,
		Description: "Write matches into a timestamped file inside a directory",
	},
	{
		Command:     `logsift scan -f app.ndjson -p "refused" --field message`,
		Description: "Match against one JSON field of structured logs",
	},
	{
		Command:     `logsift scan -f boot.log -p "error" --summary`,
		Description: "Print a summary table after the scan",
	},
}

// Run executes the examples command
func (c *ExamplesCmd) Run(globals *Globals) error {
	fmt.Fprintln(globals.Stdout, "logsift scan examples:")
	fmt.Fprintln(globals.Stdout, "")
	for _, ex := range scanExamples {
		fmt.Fprintf(globals.Stdout, "  %s\n", ex.Command)
		fmt.Fprintf(globals.Stdout, "      %s\n", ex.Description)
		fmt.Fprintln(globals.Stdout, "")
	}
	return nil
}
