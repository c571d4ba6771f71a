package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/application/report/usecases"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/utils"
)

type FetchRequest struct {
	S3Location string `json:"s3_location"`
}

type StorageHealthChecker interface {
	Execute() *dto.StorageHealthDTO
}

type ReportHandler struct {
	fetchUC  usecases.FetchReportExecutor
	healthUC StorageHealthChecker
}

func NewReportHandler(fetchUC usecases.FetchReportExecutor, healthUC StorageHealthChecker) *ReportHandler {
	return &ReportHandler{
		fetchUC:  fetchUC,
		healthUC: healthUC,
	}
}

// Fetch handles POST /api/admin/reports/fetch. Unlike the request report
// views it surfaces every failure with its reason.
func (h *ReportHandler) Fetch(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	r, err := h.fetchUC.Execute(c.Request.Context(), usecases.FetchReportQuery{Location: req.S3Location})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report fetched", r)
}

// Health handles GET /api/admin/reports/health
func (h *ReportHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.healthUC.Execute())
}
