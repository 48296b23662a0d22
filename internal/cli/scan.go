package cli

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"

	"logsift/internal/matcher"
	"logsift/internal/output"
	"logsift/internal/scan"
)

// ScanCmd scans a log file for lines matching boolean keyword expressions or
// regular expressions
type ScanCmd struct {
	File       string   `short:"f" required:"" type:"existingfile" help:"Path to the log file"`
	Patterns   []string `short:"p" required:"" help:"Expressions to search for; multiple values are OR'd together"`
	IgnoreCase bool     `short:"i" help:"Case-insensitive matching"`
	Regex      bool     `short:"r" help:"Treat patterns as regular expressions instead of boolean keyword expressions"`
	Output     string   `short:"o" help:"Output file or directory (defaults to stdout)"`
	Field      string   `help:"Match against this JSON field of each line instead of the whole line (gjson path)"`
	Summary    bool     `help:"Print a summary table after the scan"`
}

// Run executes the scan command
func (c *ScanCmd) Run(globals *Globals) error {
	c.applyConfigDefaults(globals)

	m, err := c.buildMatcher()
	if err != nil {
		return outputError(globals, "COMPILE_FAILED", err.Error())
	}
	globals.Logger.Debugw("compiled matcher",
		"mode", c.mode(),
		"patterns", m.Patterns(),
		"ignore_case", c.IgnoreCase)

	file, err := os.Open(c.File)
	if err != nil {
		return outputError(globals, "FILE_NOT_FOUND", fmt.Sprintf("cannot open log file: %s", err))
	}
	defer func() {
		if err := file.Close(); err != nil {
			globals.Debug("Failed to close log file: %v", err)
		}
	}()

	sink, outPath, err := c.openSink(globals, m)
	if err != nil {
		return outputError(globals, "OUTPUT_FAILED", err.Error())
	}

	scanner := scan.NewScanner(m)
	scanner.Field = c.Field

	stats, scanErr := scanner.Scan(file, sink)
	closeErr := sink.Close()
	if scanErr != nil {
		return outputError(globals, "SCAN_FAILED", scanErr.Error())
	}
	if closeErr != nil {
		return outputError(globals, "OUTPUT_FAILED", closeErr.Error())
	}

	if outPath != "" {
		globals.Logger.Infow("results written", "path", outPath, "matches", stats.Matches)
	}
	if c.Summary && !globals.Quiet {
		summary := output.Summary{
			Mode:     c.mode(),
			Patterns: m.Patterns(),
			Lines:    stats.Lines,
			Matches:  stats.Matches,
			Output:   outPath,
		}
		if err := summary.Render(globals.Stderr); err != nil {
			return err
		}
	}
	return nil
}

// applyConfigDefaults fills in values the user did not pass on the command
// line from the loaded configuration.
func (c *ScanCmd) applyConfigDefaults(globals *Globals) {
	cfg := globals.Config
	if cfg == nil {
		return
	}
	c.IgnoreCase = c.IgnoreCase || cfg.Defaults.IgnoreCase
	c.Summary = c.Summary || cfg.Defaults.Summary
	if c.Output == "" {
		c.Output = cfg.Defaults.Output
	}
	if c.Field == "" {
		c.Field = cfg.Defaults.Field
	}
}

func (c *ScanCmd) mode() string {
	if c.Regex {
		return "regex"
	}
	return "expression"
}

// buildMatcher compiles every pattern up front; a malformed expression or
// regex aborts the run before any line is read.
func (c *ScanCmd) buildMatcher() (matcher.Matcher, error) {
	if c.Regex {
		return matcher.NewRegexMatcher(c.Patterns, c.IgnoreCase)
	}
	return matcher.NewExpressionMatcher(c.Patterns, c.IgnoreCase)
}

func (c *ScanCmd) openSink(globals *Globals, m matcher.Matcher) (output.Sink, string, error) {
	if c.Output == "" {
		return output.NewStreamSink(globals.Stdout, c.useColor(globals)), "", nil
	}

	path := output.ResolveOutputPath(clock.New(), c.Output, c.File)
	globals.Logger.Debugw("resolved output path", "path", path)

	sink, err := output.NewFileSink(path, m.Description())
	if err != nil {
		return nil, "", err
	}
	return sink, path, nil
}

func (c *ScanCmd) useColor(globals *Globals) bool {
	switch globals.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := globals.Stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
