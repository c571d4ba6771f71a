package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Success: false,
			Data:    HealthResponse{Status: "degraded", Database: "down"},
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", HealthResponse{Status: "ok", Database: "up"})
}
