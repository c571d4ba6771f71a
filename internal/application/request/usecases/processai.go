package usecases

import (
	"context"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/logger"
)

type ProcessAICommand struct {
	RequestID string
}

type ProcessAIResult struct {
	Request  *dto.RequestDTO  `json:"request"`
	Analysis *dto.AnalysisDTO `json:"analysis,omitempty"`
	// Created is false when the request already had a summary.
	Created  bool             `json:"created"`
}

// ProcessAIUseCase runs the mock analysis once per request and attaches the
// result through the summary update path.
type ProcessAIUseCase struct {
	repo   request.Repository
	update *UpdateStatusUseCase
	rates  HourlyRateProvider
	logger logger.Interface
}

func NewProcessAIUseCase(
	repo request.Repository,
	update *UpdateStatusUseCase,
	rates HourlyRateProvider,
	logger logger.Interface,
) *ProcessAIUseCase {
	return &ProcessAIUseCase{
		repo:   repo,
		update: update,
		rates:  rates,
		logger: logger,
	}
}

func (uc *ProcessAIUseCase) Execute(ctx context.Context, cmd ProcessAICommand) (*ProcessAIResult, error) {
	r, err := loadRequest(ctx, uc.repo, uc.logger, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if r.HasSummary() {
		uc.logger.Infow("AI summary already exists", "request_id", cmd.RequestID)
		return &ProcessAIResult{Request: dto.ToRequestDTO(r)}, nil
	}

	rate := 0.0
	if uc.rates != nil {
		rate = uc.rates.HourlyRate(ctx)
	}
	analysis := request.Analyze(r.Details(), rate)

	// same-status update: only the summary changes
	updated, err := uc.update.Execute(ctx, UpdateStatusCommand{
		RequestID: cmd.RequestID,
		Status:    r.Status().String(),
		Summary:   dto.ToSummaryDTO(analysis.Summary()),
		Role:      constants.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("AI summary created",
		"request_id", cmd.RequestID,
		"complexity", analysis.Complexity,
		"feasibility", analysis.Feasibility,
		"action", analysis.Action,
	)

	return &ProcessAIResult{
		Request:  updated.Request,
		Analysis: dto.ToAnalysisDTO(analysis),
		Created:  true,
	}, nil
}
