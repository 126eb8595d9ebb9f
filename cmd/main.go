package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

func announce(lc fx.Lifecycle, _ commands.BookingCommands, _ queries.BookingQueries, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("booking engine started",
				"env", cfg.App.Env,
				"storage", cfg.App.StorageDriver,
				"notify", cfg.Notify.Transport,
				"lock", cfg.App.LockDriver,
				"relay", cfg.Relay.Enabled)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("booking engine stopping")
			return nil
		},
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	app := fx.New(
		bootstrap.NewModule(cfg),
		fx.Invoke(
			announce,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
}
