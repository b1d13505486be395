package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storecredit-engine/internal/handler/api"
	"storecredit-engine/internal/handler/middleware"
	"storecredit-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	promotionHandler *api.PromotionHandler,
	bulkEventHandler *api.BulkEventHandler,
	sessionAuth *middleware.SessionAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, promotionHandler, bulkEventHandler, sessionAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	promotionHandler *api.PromotionHandler,
	bulkEventHandler *api.BulkEventHandler,
	sessionAuth *middleware.SessionAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	promotions := engine.Group("/promotions/promotions")
	promotions.Use(sessionAuth.RequireSession())
	{
		addRoutes(promotions, []route{
			{Method: http.MethodGet, Path: "", Handler: promotionHandler.List},
			{Method: http.MethodPost, Path: "", Handler: promotionHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: promotionHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: promotionHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: promotionHandler.Delete},
		})
	}

	events := engine.Group("/store_credit_events")
	events.Use(sessionAuth.RequireSession())
	{
		addRoutes(events, []route{
			{Method: http.MethodGet, Path: "/sources", Handler: bulkEventHandler.Sources},
			{Method: http.MethodPost, Path: "/preview", Handler: bulkEventHandler.Preview},
			{Method: http.MethodPost, Path: "/run", Handler: bulkEventHandler.Run},
			{Method: http.MethodGet, Path: "/jobs/:id", Handler: bulkEventHandler.GetJob},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
