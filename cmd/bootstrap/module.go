package bootstrap

import (
	"storecredit-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SessionModule,
	ClientsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
