package bootstrap

import (
	"time"

	"storecredit-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BulkConfig {
			return cfg.Bulk
		},
		func(cfg config.Config) (*time.Location, error) {
			return cfg.Shopify.Location()
		},
	),
)
