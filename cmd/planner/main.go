// Package main is the interactive console planner. It asks for a destination,
// dates, budget, hotel and activities, then prints the trip summary.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkordes/vacation-planner/internal/catalog"
	"github.com/pkordes/vacation-planner/internal/config"
	"github.com/pkordes/vacation-planner/internal/prompt"
	"github.com/pkordes/vacation-planner/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they never interleave with the prompts on stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	cat, err := catalog.Default()
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	app := &planner{
		catalog: cat,
		service: service.NewPlannerService(cat, logger),
		prompt:  prompt.New(os.Stdin, os.Stdout, logger),
		out:     os.Stdout,
	}
	if err := app.run(context.Background()); err != nil {
		slog.Error("planning aborted", "error", err)
		os.Exit(1)
	}
}
