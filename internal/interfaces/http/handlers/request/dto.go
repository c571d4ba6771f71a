package request

import (
	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/application/request/usecases"
)

// UpdateStatusRequest is the admin status payload. Summary also accepts the
// ai_summary key used by the back office form.
type UpdateStatusRequest struct {
	Status         string          `json:"status" binding:"required"`
	ReportLocation *string         `json:"report_location"`
	Summary        *dto.SummaryDTO `json:"summary"`
	AISummary      *dto.SummaryDTO `json:"ai_summary"`
}

func (r *UpdateStatusRequest) ToCommand(requestID, role string) usecases.UpdateStatusCommand {
	summary := r.Summary
	if summary == nil {
		summary = r.AISummary
	}
	return usecases.UpdateStatusCommand{
		RequestID:      requestID,
		Status:         r.Status,
		ReportLocation: r.ReportLocation,
		Summary:        summary,
		Role:           role,
	}
}

// ClientStatusRequest is what the client hub may send.
type ClientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListRequestsResponse struct {
	Items []*dto.RequestDTO `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Pages int               `json:"pages"`
}
