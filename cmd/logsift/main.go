package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"logsift/internal/cli"
	"logsift/internal/config"
)

const quickStart = `logsift - grep log files with boolean keyword expressions

START HERE (this is the command you want):
  logsift scan -f /var/log/syslog -p "error && !debug"

Flags:
  -f    Log file to scan
  -p    Expression to match (repeatable; values are OR'd). With -r, a regex.
  -i    Case-insensitive matching
  -o    Output file or directory (default: stdout)

Other useful commands:
  logsift examples                      Show more usage examples
  logsift config                        Show effective configuration
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("logsift"),
		kong.Description("Scan a log file for lines matching boolean keyword expressions or regular expressions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	logger := cli.NewLogger(c.Verbose || cfg.Verbose, c.Quiet || cfg.Quiet)
	defer func() {
		_ = logger.Sync()
	}()

	globals := cli.NewGlobals(&c, cfg, logger)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
