package usecases

import (
	"context"

	reportdto "github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
)

// Notifier forwards the full updated record to the configured webhook.
type Notifier interface {
	NotifyRequestUpdated(ctx context.Context, r *dto.RequestDTO) error
}

// Mailer sends the acknowledgement for a new request.
type Mailer interface {
	SendRequestAcknowledgement(ctx context.Context, r *dto.RequestDTO) error
}

// TransitionAuthorizer decides whether role may move a request to target.
type TransitionAuthorizer interface {
	CanTransition(role string, target vo.RequestStatus) (bool, error)
}

// Sanitizer removes markup from caller-supplied free text.
type Sanitizer interface {
	StripTags(s string) string
}

// HTMLRenderer renders summary markdown for display.
type HTMLRenderer interface {
	ToHTML(markdown string) (string, error)
}

// ReportResolver returns a report for a location, falling back when needed.
type ReportResolver interface {
	ResolveReport(ctx context.Context, location string) *reportdto.ResolvedReportDTO
}

// HourlyRateProvider supplies the development rate for cost estimates.
type HourlyRateProvider interface {
	HourlyRate(ctx context.Context) float64
}

// DraftCodec turns drafts into signed continuation tokens and back.
type DraftCodec interface {
	EncodeDraft(d *request.Draft) (string, error)
	DecodeDraft(token string) (*request.Draft, error)
}

// Exporter renders requests as a spreadsheet.
type Exporter interface {
	ExportRequests(items []*dto.RequestDTO) ([]byte, error)
}

// Recorder counts request lifecycle events.
type Recorder interface {
	RequestCreated(source string)
	StatusChanged(from, to vo.RequestStatus)
	NotificationSent(ok bool)
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
	ClientView(ctx context.Context, query GetRequestQuery) (*dto.ClientViewDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type ProcessAIExecutor interface {
	Execute(ctx context.Context, cmd ProcessAICommand) (*ProcessAIResult, error)
}

type ExportRequestsExecutor interface {
	Execute(ctx context.Context, query ExportRequestsQuery) ([]byte, error)
}

type CreateDraftExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateDraftResult, error)
}

type CommitDraftExecutor interface {
	Execute(ctx context.Context, cmd CommitDraftCommand) (*CreateRequestResult, error)
}

type RequestReportExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*reportdto.ResolvedReportDTO, error)
}

type noopRecorder struct{}

func (noopRecorder) RequestCreated(string) {}

func (noopRecorder) StatusChanged(vo.RequestStatus, vo.RequestStatus) {}

func (noopRecorder) NotificationSent(bool) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
