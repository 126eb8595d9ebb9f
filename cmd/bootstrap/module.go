package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

func NewModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		components.NotificationModule,
		components.UseCaseModule,
	}

	switch cfg.App.StorageDriver {
	case components.StorageDriverMemory:
		opts = append(opts, components.MemoryPersistenceModule)
	default:
		opts = append(opts, DBModule, components.PostgresPersistenceModule)
		if cfg.Relay.Enabled {
			opts = append(opts, components.RelayModule)
		}
	}

	return fx.Options(opts...)
}
