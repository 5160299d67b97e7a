package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/asciiflag/pkg/flag"
	"github.com/matzehuels/asciiflag/pkg/observability"
)

// runFlags draws one flag when a size is given, or every configured size
// otherwise. Sizes and characters are validated before anything is printed.
func (c *CLI) runFlags(ctx context.Context, args []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return err
	}
	chars, err := c.characters(cfg)
	if err != nil {
		return err
	}
	logger.Debug("using characters", "set", fmt.Sprintf("%q", chars.String()))

	if len(args) == 1 {
		n, err := flag.ParseSize(args[0])
		if err != nil {
			return err
		}
		printTitle(c.out)
		fmt.Fprintf(c.out, " - n=%d\n", n)
		if err := c.drawFlag(ctx, n, chars); err != nil {
			return err
		}
		prog.done("Rendered 1 flag")
		return nil
	}

	printTitle(c.out)
	for _, n := range cfg.Sizes {
		fmt.Fprintf(c.out, "- n=%d:\n", n)
		if err := c.drawFlag(ctx, n, chars); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d flags", len(cfg.Sizes)))
	return nil
}

// drawFlag renders a flag and prints it.
func (c *CLI) drawFlag(ctx context.Context, n int, chars flag.Characters) error {
	text, err := renderFlag(ctx, n, chars)
	if err != nil {
		return err
	}
	printFlag(c.out, text)
	return nil
}

// renderFlag renders a flag of size n, reporting the render to the
// observability hooks and the context logger.
func renderFlag(ctx context.Context, n int, chars flag.Characters) (string, error) {
	logger := loggerFromContext(ctx)
	hooks := observability.Render()

	hooks.OnRenderStart(ctx, n)
	start := time.Now()
	g, err := flag.Build(n, chars)
	hooks.OnRenderComplete(ctx, n, len(g), time.Since(start), err)
	if err != nil {
		logger.Debug("render failed", "n", n, "err", err)
		return "", err
	}

	logger.Debug("rendered flag", "n", n, "rows", len(g), "width", g.Width())
	return g.String(), nil
}
