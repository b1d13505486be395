package components

import (
	"storecredit-engine/internal/infra/db"
	"storecredit-engine/internal/infra/repository"
	"storecredit-engine/internal/usecase/commands"
	"storecredit-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
			fx.As(new(queries.PromotionReadRepo)),
		),
		fx.Annotate(
			repository.NewJobRepository,
			fx.As(new(commands.JobRepository)),
			fx.As(new(queries.JobReadRepo)),
		),
		fx.Annotate(
			repository.NewIssuanceRepository,
			fx.As(new(commands.IssuanceRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
