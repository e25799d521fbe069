package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/lqr-hy/docs/cmd/docnav/commands"
	ferrors "github.com/lqr-hy/docs/internal/foundation/errors"
	"github.com/lqr-hy/docs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("docnav"),
		kong.Description("Generate VitePress/VuePress nav and sidebar config from a docs directory."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	global := &commands.Global{Ctx: ctx, Logger: slog.Default(), Out: os.Stdout}
	err = kctx.Run(global, cli)
	cancel()
	if err != nil {
		os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Handle(err, os.Stderr))
	}
}
