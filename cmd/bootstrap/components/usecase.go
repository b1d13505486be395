package components

import (
	"storecredit-engine/internal/pkg/clock"
	"storecredit-engine/internal/pkg/config"
	"storecredit-engine/internal/usecase/commands"
	"storecredit-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPromotionQueries,
		func(orders queries.OrderSource, jobRepo queries.JobReadRepo, cfg config.BulkConfig) queries.BulkEventQueries {
			return queries.NewBulkEventQueries(orders, jobRepo, cfg.PreviewTopN)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPromotionUseCase,
		commands.NewBulkEventUseCase,
	),
)
