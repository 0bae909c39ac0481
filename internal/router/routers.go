package router

import (
	"github.com/gin-gonic/gin"
	"github.com/surdiana/worklog/config"
	"github.com/surdiana/worklog/internal/handler"
	"github.com/surdiana/worklog/internal/middleware"
)

type Router struct {
	authHandler   *handler.AuthHandler
	logHandler    *handler.LogHandler
	statsHandler  *handler.StatsHandler
	healthHandler *handler.HealthHandler

	authMw *middleware.AuthMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	log *handler.LogHandler,
	stats *handler.StatsHandler,
	health *handler.HealthHandler,

	authMw *middleware.AuthMiddleware,
	config *config.Config,
) *Router {
	return &Router{
		authHandler:   auth,
		logHandler:    log,
		statsHandler:  stats,
		healthHandler: health,

		authMw: authMw,
		Config: config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.Health)

		r.authRoutes(api)
		r.logRoutes(api)
	}

	return router
}
