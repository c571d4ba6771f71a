package request

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/application/request/usecases"
	"github.com/saase/requesthub/internal/shared/biztime"
	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

type AdminRequestHandler struct {
	listUC      usecases.ListRequestsExecutor
	exportUC    usecases.ExportRequestsExecutor
	getUC       usecases.GetRequestExecutor
	updateUC    usecases.UpdateStatusExecutor
	processAIUC usecases.ProcessAIExecutor
	reportUC    usecases.RequestReportExecutor
	logger      logger.Interface
}

func NewAdminRequestHandler(
	listUC usecases.ListRequestsExecutor,
	exportUC usecases.ExportRequestsExecutor,
	getUC usecases.GetRequestExecutor,
	updateUC usecases.UpdateStatusExecutor,
	processAIUC usecases.ProcessAIExecutor,
	reportUC usecases.RequestReportExecutor,
	logger logger.Interface,
) *AdminRequestHandler {
	return &AdminRequestHandler{
		listUC:      listUC,
		exportUC:    exportUC,
		getUC:       getUC,
		updateUC:    updateUC,
		processAIUC: processAIUC,
		reportUC:    reportUC,
		logger:      logger,
	}
}

// List handles GET /api/admin/requests?request_id&status&page&limit
func (h *AdminRequestHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		RequestID: c.Query("request_id"),
		Status:    c.Query("status"),
		Page:      p.Page,
		Limit:     p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListRequestsResponse{
		Items: result.Items,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
		Pages: result.Pages,
	})
}

// Export handles GET /api/admin/requests/export
func (h *AdminRequestHandler) Export(c *gin.Context) {
	data, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportRequestsQuery{
		RequestID: c.Query("request_id"),
		Status:    c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("requests-%s.xlsx", biztime.NowUTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, data)
}

// Get handles GET /api/admin/requests/:request_id
func (h *AdminRequestHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID: c.Param(paramRequestID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /api/admin/requests/:request_id/status
func (h *AdminRequestHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := c.GetString(constants.ContextKeyRole)
	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(c.Param(paramRequestID), role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request status updated", result)
}

// ProcessAI handles POST /api/admin/requests/:request_id/ai-processing
func (h *AdminRequestHandler) ProcessAI(c *gin.Context) {
	result, err := h.processAIUC.Execute(c.Request.Context(), usecases.ProcessAICommand{
		RequestID: c.Param(paramRequestID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "AI summary created"
	if !result.Created {
		message = "AI summary already exists"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Report handles GET /api/admin/requests/:request_id/report
func (h *AdminRequestHandler) Report(c *gin.Context) {
	result, err := h.reportUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID: c.Param(paramRequestID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
