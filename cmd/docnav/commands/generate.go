package commands

import (
	"fmt"
	"time"

	"github.com/lqr-hy/docs/internal/config"
	"github.com/lqr-hy/docs/internal/generator"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Override output.path from the configuration"`
}

func (c *GenerateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if c.Output != "" {
		cfg.Output.Path = c.Output
		cfg.Output.Format = ""
		config.ApplyDefaults(cfg)
	}

	report, err := generator.New(cfg).Run(g.context())
	if err != nil {
		return err
	}
	for _, p := range report.Written {
		_, _ = fmt.Fprintf(g.out(), "wrote %s\n", p)
	}
	for _, p := range report.Unchanged {
		_, _ = fmt.Fprintf(g.out(), "unchanged %s\n", p)
	}
	_, _ = fmt.Fprintf(g.out(), "%d categories, %d pages (%s)\n", report.Categories, report.Pages, report.Duration.Round(time.Millisecond))
	return nil
}
