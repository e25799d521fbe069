package commands

import (
	"github.com/lqr-hy/docs/internal/config"
	"github.com/lqr-hy/docs/internal/generator"
	"github.com/lqr-hy/docs/internal/site"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Format string `help:"Output format (json or yaml)" default:"json" enum:"json,yaml"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	nav, err := generator.New(cfg).Navigation(g.context())
	if err != nil {
		return err
	}
	format, err := config.NormalizeOutputFormat(n.Format)
	if err != nil {
		return err
	}
	data, err := site.Encode(nav, format)
	if err != nil {
		return err
	}
	_, err = g.out().Write(data)
	return err
}
