package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/openearth/nesbp-msp-knowledge-platform/cmd/quartonav/commands"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/config"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/version"
)

func main() {
	// .env values seed the flag environment; real environment variables win.
	if paths, err := config.LoadEnvFiles("."); err != nil && !stderrors.Is(err, config.ErrNoEnvFile) {
		slog.Warn("Failed to load .env file", "error", err)
	} else if len(paths) > 0 {
		slog.Debug("Loaded environment files", "paths", paths)
	}

	cli := &commands.CLI{}
	kong.Parse(cli,
		kong.Name(config.Program),
		kong.Description("Generate the Quarto website navigation and pages from node records."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Stdout)
	stop()
	os.Exit(code)
}
