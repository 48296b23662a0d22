package cli

import (
	"fmt"

	"logsift/internal/config"
)

// ConfigCmd shows configuration
type ConfigCmd struct {
	Path bool `help:"Show only the configuration file path"`
}

// Run executes the config command
func (c *ConfigCmd) Run(globals *Globals) error {
	if c.Path {
		path := config.ConfigFile()
		if path == "" {
			fmt.Fprintln(globals.Stdout, "No configuration file found")
			return nil
		}
		fmt.Fprintln(globals.Stdout, path)
		return nil
	}

	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  color:   %s\n", cfg.Color)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Scan defaults:")
	fmt.Fprintf(globals.Stdout, "  ignore_case: %v\n", cfg.Defaults.IgnoreCase)
	fmt.Fprintf(globals.Stdout, "  output:      %s\n", cfg.Defaults.Output)
	fmt.Fprintf(globals.Stdout, "  field:       %s\n", cfg.Defaults.Field)
	fmt.Fprintf(globals.Stdout, "  summary:     %v\n", cfg.Defaults.Summary)

	if path := config.ConfigFile(); path != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", path)
	}
	return nil
}
