package bootstrap

import (
	"log/slog"

	"storecredit-engine/internal/infra/credit"
	"storecredit-engine/internal/infra/shopify"
	"storecredit-engine/internal/pkg/config"
	"storecredit-engine/internal/usecase/commands"
	"storecredit-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClientsModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			NewShopifyClient,
			fx.As(new(queries.OrderSource)),
		),
		fx.Annotate(
			NewCreditIssuer,
			fx.As(new(commands.CreditIssuer)),
		),
	),
)

func NewShopifyClient(cfg config.Config, logger *slog.Logger) *shopify.Client {
	return shopify.NewClient(cfg.Shopify, cfg.Bulk.RetryMaxElapsed, logger)
}

func NewCreditIssuer(cfg config.Config, logger *slog.Logger) *credit.Issuer {
	return credit.NewIssuer(cfg.CreditAPI, cfg.Bulk.RetryMaxElapsed, logger)
}
