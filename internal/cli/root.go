package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"logsift/internal/config"
)

// CLI is the root command structure for logsift
type CLI struct {
	// Global flags
	Quiet   bool   `short:"q" help:"Suppress non-match output (only emit matching lines)"`
	Verbose bool   `short:"v" help:"Show debug output (compiled expressions, resolved paths)"`
	Color   string `default:"auto" enum:"auto,always,never" help:"Colorize matches written to the terminal"`

	// Commands
	Scan     ScanCmd     `cmd:"" default:"withargs" help:"Scan a log file for matching lines"`
	Config   ConfigCmd   `cmd:"" help:"Show configuration"`
	Examples ExamplesCmd `cmd:"" help:"Show usage examples for logsift commands"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Quiet   bool
	Verbose bool
	Color   string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *zap.SugaredLogger
	Config  *config.Config
}

// NewGlobals creates a new Globals instance with config fallbacks
func NewGlobals(cli *CLI, cfg *config.Config, logger *zap.SugaredLogger) *Globals {
	g := &Globals{
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Color:   cli.Color,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
		Config:  cfg,
	}

	// Apply config values if CLI flags weren't explicitly set
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
		if cli.Color == "auto" && cfg.Color != "" {
			g.Color = cfg.Color
		}
	}

	return g
}

// NewLogger builds the run-scoped logger. Verbose enables debug output,
// quiet restricts logging to errors.
func NewLogger(verbose, quiet bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	if quiet {
		cfg.Level.SetLevel(zap.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// Debug prints a debug message if verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Verbose {
		fmt.Fprintf(g.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	_, err := fmt.Fprintf(globals.Stdout, "logsift version %s (%s)\n", Version, Commit)
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
