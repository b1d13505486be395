package components

import (
	"storecredit-engine/internal/handler"
	"storecredit-engine/internal/handler/api"
	"storecredit-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromotionHandler,
		api.NewBulkEventHandler,
		middleware.NewSessionAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
