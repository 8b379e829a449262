package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"webmon/internal/config"
	"webmon/internal/monitor"
	"webmon/internal/probe"
	"webmon/internal/storage/sqlite"
	"webmon/internal/targets"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run performs one measurement pass over the configured target list. Only
// setup failures (configuration, target list, store) are returned as errors;
// per-site probe and write failures are degraded-data events handled inside
// the monitor and never change the exit code.
func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	sites, err := targets.Load(cfg.TargetsFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open stats store at %s: %w", cfg.DatabasePath, err)
	}
	defer store.Close()

	prober := probe.New(cfg.HTTPTimeout)
	summary := monitor.New(store, prober, logger).Run(ctx, sites)

	logger.Info("run complete",
		"sites", summary.Sites,
		"failures", summary.Failures,
		"cache_misses", summary.CacheMisses,
		"rows_lost", summary.RowsLost,
	)
	return nil
}
