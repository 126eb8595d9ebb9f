package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/logger"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.NewLogger(cfg.Log)

	dir, err := filepath.Abs(cfg.App.MigrationsPath)
	if err != nil {
		log.Error("invalid migrations path", "path", cfg.App.MigrationsPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		log.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + dir,
		DryRun: *dryRun,
	})
	if err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	log.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"pending", len(res.Pending),
		"dry_run", *dryRun)
}
