package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lqr-hy/docs/internal/config"
)

// Global carries process-wide state into commands.
type Global struct {
	Ctx    context.Context
	Logger *slog.Logger
	Out    io.Writer
}

func (g *Global) context() context.Context {
	if g == nil || g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: docnav.yaml when present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	DocsDir string           `name:"docs-dir" help:"Override docs.root from the configuration"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Scan     ScanCmd     `cmd:"" help:"Print the scanned docs tree"`
	Nav      NavCmd      `cmd:"" help:"Print the derived nav bar and sidebar"`
	Generate GenerateCmd `cmd:"" help:"Write the site config (and optional page index / head fragment)"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the site config whenever the docs change"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; sets up flag-driven logging until a config is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(config.LoggingConfig{}.NewLogger(os.Stderr, c.Verbose))
	return nil
}

// LoadConfig loads the configuration, applies flag overrides and switches logging to the
// configured format and level.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(c.Config)
	if err != nil {
		return nil, err
	}
	cfg.WithDocsRoot(c.DocsDir)
	slog.SetDefault(cfg.Logging.NewLogger(os.Stderr, c.Verbose))
	slog.Debug("Configuration loaded", "generator", cfg.Generator, "root", cfg.Docs.Root, "output", cfg.Output.Path)
	return cfg, nil
}
