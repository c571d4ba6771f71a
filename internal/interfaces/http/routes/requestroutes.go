package routes

import (
	"github.com/gin-gonic/gin"

	requestHandlers "github.com/saase/requesthub/internal/interfaces/http/handlers/request"
	"github.com/saase/requesthub/internal/interfaces/http/middleware"
)

// RequestRouteConfig holds the configuration for public request routes
type RequestRouteConfig struct {
	Handler     *requestHandlers.RequestHandler
	RateLimiter *middleware.RateLimiter // may be nil
}

// SetupRequestRoutes configures the intake and client hub routes. They are
// unauthenticated; the request id acts as the client's handle.
func SetupRequestRoutes(engine *gin.Engine, config *RequestRouteConfig) {
	requests := engine.Group("/api/requests")
	{
		create := []gin.HandlerFunc{config.Handler.Create}
		commit := []gin.HandlerFunc{config.Handler.CommitDraft}
		if config.RateLimiter != nil {
			create = append([]gin.HandlerFunc{config.RateLimiter.Limit()}, create...)
			commit = append([]gin.HandlerFunc{config.RateLimiter.Limit()}, commit...)
		}
		requests.POST("", create...)

		// Drafts before /:request_id
		requests.POST("/drafts", config.Handler.CreateDraft)
		requests.POST("/drafts/commit", commit...)

		requests.GET("/:request_id", config.Handler.Get)
		requests.PATCH("/:request_id/status", config.Handler.UpdateStatus)
		requests.GET("/:request_id/report", config.Handler.Report)
	}
}
