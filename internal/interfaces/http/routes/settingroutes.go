package routes

import (
	"github.com/gin-gonic/gin"

	settingHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/setting"
	"github.com/saase/requesthub/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler        *settingHandlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSettingRoutes configures company setting admin routes
func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/api/admin/settings")
	settings.Use(config.AuthMiddleware.RequireAuth())
	settings.Use(middleware.RequireAdmin())
	{
		settings.GET("", config.Handler.Get)
		settings.PUT("/profile", config.Handler.UpdateProfile)
		settings.PUT("/pricing", config.Handler.UpdatePricing)
		settings.PUT("/payment-terms", config.Handler.UpdatePaymentTerms)
	}
}
