// Package request serves the public request intake and client hub endpoints
// and the admin request back office.
package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/application/request/usecases"
	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

type RequestHandler struct {
	createUC      usecases.CreateRequestExecutor
	createDraftUC usecases.CreateDraftExecutor
	commitDraftUC usecases.CommitDraftExecutor
	getUC         usecases.GetRequestExecutor
	updateUC      usecases.UpdateStatusExecutor
	reportUC      usecases.RequestReportExecutor
	logger        logger.Interface
}

func NewRequestHandler(
	createUC usecases.CreateRequestExecutor,
	createDraftUC usecases.CreateDraftExecutor,
	commitDraftUC usecases.CommitDraftExecutor,
	getUC usecases.GetRequestExecutor,
	updateUC usecases.UpdateStatusExecutor,
	reportUC usecases.RequestReportExecutor,
	logger logger.Interface,
) *RequestHandler {
	return &RequestHandler{
		createUC:      createUC,
		createDraftUC: createDraftUC,
		commitDraftUC: commitDraftUC,
		getUC:         getUC,
		updateUC:      updateUC,
		reportUC:      reportUC,
		logger:        logger,
	}
}

// Create handles POST /api/requests
func (h *RequestHandler) Create(c *gin.Context) {
	var cmd usecases.CreateRequestCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request submitted successfully")
}

// CreateDraft handles POST /api/requests/drafts
func (h *RequestHandler) CreateDraft(c *gin.Context) {
	var cmd usecases.CreateRequestCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createDraftUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Draft created", result)
}

// CommitDraft handles POST /api/requests/drafts/commit
func (h *RequestHandler) CommitDraft(c *gin.Context) {
	var cmd usecases.CommitDraftCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.commitDraftUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request submitted successfully")
}

// Get handles GET /api/requests/:request_id
func (h *RequestHandler) Get(c *gin.Context) {
	view, err := h.getUC.ClientView(c.Request.Context(), usecases.GetRequestQuery{
		RequestID: c.Param(paramRequestID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// UpdateStatus handles PATCH /api/requests/:request_id/status. Clients may
// only approve an accepted proposal.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var req ClientStatusRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		RequestID: c.Param(paramRequestID),
		Status:    req.Status,
		Role:      constants.RoleClient,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request status updated", result)
}

// Report handles GET /api/requests/:request_id/report
func (h *RequestHandler) Report(c *gin.Context) {
	result, err := h.reportUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID: c.Param(paramRequestID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
