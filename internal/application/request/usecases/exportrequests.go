package usecases

import (
	"context"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
)

type ExportRequestsQuery struct {
	RequestID string
	Status    string
}

// ExportRequestsUseCase renders every request matching the filter, newest first.
type ExportRequestsUseCase struct {
	repo     request.Repository
	exporter Exporter
	logger   logger.Interface
}

func NewExportRequestsUseCase(repo request.Repository, exporter Exporter, logger logger.Interface) *ExportRequestsUseCase {
	return &ExportRequestsUseCase{
		repo:     repo,
		exporter: exporter,
		logger:   logger,
	}
}

func (uc *ExportRequestsUseCase) Execute(ctx context.Context, query ExportRequestsQuery) ([]byte, error) {
	var items []*request.Request

	filter, ok := buildFilter(query.RequestID, query.Status)
	if ok {
		var err error
		items, _, err = uc.repo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list requests for export", "error", err)
			return nil, errors.NewPersistenceError("failed to list requests").WithCause(err)
		}
	}

	out, err := uc.exporter.ExportRequests(dto.ToRequestDTOs(items))
	if err != nil {
		uc.logger.Errorw("failed to render request export", "error", err)
		return nil, errors.NewInternalError("failed to export requests")
	}

	uc.logger.Infow("requests exported", "count", len(items))
	return out, nil
}
