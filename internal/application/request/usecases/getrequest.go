package usecases

import (
	"context"
	stderrors "errors"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

type GetRequestQuery struct {
	RequestID string
}

type GetRequestUseCase struct {
	repo     request.Repository
	renderer HTMLRenderer
	logger   logger.Interface
}

func NewGetRequestUseCase(repo request.Repository, renderer HTMLRenderer, logger logger.Interface) *GetRequestUseCase {
	return &GetRequestUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	r, err := loadRequest(ctx, uc.repo, uc.logger, query.RequestID)
	if err != nil {
		return nil, err
	}
	return dto.ToRequestDTO(r), nil
}

// ClientView adds the UI decisions and progress steps for the client hub.
func (uc *GetRequestUseCase) ClientView(ctx context.Context, query GetRequestQuery) (*dto.ClientViewDTO, error) {
	r, err := loadRequest(ctx, uc.repo, uc.logger, query.RequestID)
	if err != nil {
		return nil, err
	}

	view := dto.ToClientView(r)
	if view.Request.Summary != nil && uc.renderer != nil {
		view.SummaryHTML = uc.renderSummary(view.Request.Summary)
	}
	return view, nil
}

func (uc *GetRequestUseCase) renderSummary(s *dto.SummaryDTO) *dto.SummaryDTO {
	render := func(md string) string {
		html, err := uc.renderer.ToHTML(md)
		if err != nil {
			uc.logger.Warnw("failed to render summary section", "error", err)
			return ""
		}
		return html
	}

	steps := make([]string, len(s.NextSteps))
	for i, step := range s.NextSteps {
		steps[i] = render(step)
	}
	return &dto.SummaryDTO{
		ExecutiveSummary:       render(s.ExecutiveSummary),
		TechnicalAnalysis:      render(s.TechnicalAnalysis),
		ImplementationStrategy: render(s.ImplementationStrategy),
		FinancialOptimization:  render(s.FinancialOptimization),
		RiskAssessment:         render(s.RiskAssessment),
		NextSteps:              steps,
	}
}

func loadRequest(ctx context.Context, repo request.Repository, log logger.Interface, requestID string) (*request.Request, error) {
	if requestID == "" {
		return nil, errors.NewValidationError("request_id is required")
	}

	r, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		if stderrors.Is(err, request.ErrRequestNotFound) {
			return nil, errors.NewNotFoundError("request not found", requestID)
		}
		log.Errorw("failed to get request", "request_id", requestID, "error", err)
		return nil, errors.NewPersistenceError("failed to get request").WithCause(err)
	}
	return r, nil
}
