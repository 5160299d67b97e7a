// Package cli implements the asciiflag command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiflag/pkg/buildinfo"
	"github.com/matzehuels/asciiflag/pkg/config"
	"github.com/matzehuels/asciiflag/pkg/flag"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "asciiflag"

	// title is printed once before any flag.
	title = "<Japanese flag>"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer // flags and command output
	configPath string    // --config; empty means the XDG default
	chars      string    // --chars; empty means the configured set
}

// New creates a new CLI instance writing command output to out and logs to
// logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "asciiflag [n]",
		Short: "Draw the Japanese flag in ASCII art",
		Long: `asciiflag draws the Japanese flag as a block of text.

The size n must be an even non-negative integer; the flag is 3n+2 characters
wide and 2n+2 rows high. Without n, the sizes from the config file are drawn
(2, 4 and 6 by default).`,
		Example: `  asciiflag
  asciiflag 4
  asciiflag 6 --chars "=.o@"`,
		Version:           buildinfo.Version,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSize,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFlags(cmd.Context(), args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/asciiflag/config.toml)")
	root.PersistentFlags().StringVar(&c.chars, "chars", "", `characters as one string: border, body, circle border, circle body (e.g. "# *0")`)

	root.AddCommand(c.previewCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig(ctx context.Context) (config.Config, error) {
	logger := loggerFromContext(ctx)

	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Debug("no config directory, using defaults", "err", err)
			return config.Default(), nil
		}
		path = p
	}

	logger.Debug("loading config", "path", path)
	return config.Load(path)
}

// characters resolves the character set: --chars wins over the config.
func (c *CLI) characters(cfg config.Config) (flag.Characters, error) {
	if c.chars != "" {
		return flag.ParseCharacters(c.chars)
	}
	return cfg.FlagCharacters()
}

// completeSize suggests the default sizes for the positional argument.
func completeSize(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"2", "4", "6", "8"}, cobra.ShellCompDirectiveNoFileComp
}
