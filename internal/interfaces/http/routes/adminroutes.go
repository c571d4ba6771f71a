package routes

import (
	"github.com/gin-gonic/gin"

	reportHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/report"
	requestHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/request"
	"github.com/saase/requesthub/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	RequestHandler *requestHandlers.AdminRequestHandler
	ReportHandler  *reportHandlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	adminRequests := engine.Group("/api/admin/requests")
	adminRequests.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		adminRequests.GET("", cfg.RequestHandler.List)
		// IMPORTANT: export must be registered before /:request_id
		adminRequests.GET("/export", cfg.RequestHandler.Export)
		adminRequests.GET("/:request_id", cfg.RequestHandler.Get)
		adminRequests.PATCH("/:request_id/status", cfg.RequestHandler.UpdateStatus)
		adminRequests.POST("/:request_id/ai-processing", cfg.RequestHandler.ProcessAI)
		adminRequests.GET("/:request_id/report", cfg.RequestHandler.Report)
	}

	adminReports := engine.Group("/api/admin/reports")
	adminReports.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		adminReports.POST("/fetch", cfg.ReportHandler.Fetch)
		adminReports.GET("/health", cfg.ReportHandler.Health)
	}
}
