package main

import (
	"context"
	stdlog "log"
	"log/slog"
	"os"

	"github.com/dkovalev/todovault/internal/cli"
	"github.com/dkovalev/todovault/internal/config"
	"github.com/dkovalev/todovault/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	// Warnings and errors go to stderr; the REPL owns stdout.
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		stdlog.Fatalf("%v", err)
	}

	app.Run(ctx)
}
