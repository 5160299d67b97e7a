package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/asciiflag/pkg/errors"
	"github.com/matzehuels/asciiflag/pkg/flag"
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "preview [n]",
		Short:             "Resize the flag interactively",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeSize,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig(ctx)
			if err != nil {
				return err
			}
			chars, err := c.characters(cfg)
			if err != nil {
				return err
			}

			n := cfg.Sizes[0]
			if len(args) == 1 {
				if n, err = flag.ParseSize(args[0]); err != nil {
					return err
				}
			}

			p := tea.NewProgram(NewPreviewModel(ctx, n, chars), tea.WithContext(ctx))
			finalModel, err := p.Run()
			if err != nil {
				return apperr.Wrap(apperr.ErrCodeInternal, err, "preview terminal failed")
			}
			if fm, ok := finalModel.(PreviewModel); ok {
				logger.Debug("preview closed", "n", fm.N)
			}
			return nil
		},
	}
}
