package bootstrap

import (
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config so module selection can depend on it.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
