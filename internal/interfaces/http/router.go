package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saase/requesthub/internal/infrastructure/config"
	"github.com/saase/requesthub/internal/interfaces/http/middleware"
	"github.com/saase/requesthub/internal/interfaces/http/routes"
	"github.com/saase/requesthub/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics(r.metrics))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	routes.SetupRequestRoutes(r.engine, &routes.RequestRouteConfig{
		Handler:     r.hdlrs.requestHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		RequestHandler: r.hdlrs.adminRequestHandler,
		ReportHandler:  r.hdlrs.reportHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupSettingRoutes(r.engine, &routes.SettingRouteConfig{
		Handler:        r.hdlrs.settingHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
