package bootstrap

import (
	"storecredit-engine/internal/pkg/config"
	"storecredit-engine/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionVerifier,
	),
)

func NewSessionVerifier(cfg config.Config) *sessiontoken.Verifier {
	return sessiontoken.NewVerifier(cfg.Shopify.SharedSecret, cfg.Shopify.ShopDomain)
}
