package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiflag/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return fmt.Errorf("get config path: %w", err)
				}
				path = p
			}
			fmt.Fprintln(c.out, path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			chars, err := c.characters(cfg)
			if err != nil {
				return err
			}

			sizes := make([]string, len(cfg.Sizes))
			for i, n := range cfg.Sizes {
				sizes[i] = strconv.Itoa(n)
			}

			printSuccess(c.out, "Configuration is valid")
			printKeyValue(c.out, "sizes", strings.Join(sizes, ", "))
			printKeyValue(c.out, "border", strconv.QuoteRune(chars.Border))
			printKeyValue(c.out, "body", strconv.QuoteRune(chars.Body))
			printKeyValue(c.out, "circle", strconv.QuoteRune(chars.CircleBorder))
			printKeyValue(c.out, "fill", strconv.QuoteRune(chars.CircleBody))
			return nil
		},
	}
}
