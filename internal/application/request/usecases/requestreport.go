package usecases

import (
	"context"

	reportdto "github.com/saase/requesthub/internal/application/report/dto"
	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/shared/logger"
)

// RequestReportUseCase resolves the report attached to a request. A request
// with no location gets the fallback report.
type RequestReportUseCase struct {
	repo     request.Repository
	resolver ReportResolver
	logger   logger.Interface
}

func NewRequestReportUseCase(repo request.Repository, resolver ReportResolver, logger logger.Interface) *RequestReportUseCase {
	return &RequestReportUseCase{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *RequestReportUseCase) Execute(ctx context.Context, query GetRequestQuery) (*reportdto.ResolvedReportDTO, error) {
	r, err := loadRequest(ctx, uc.repo, uc.logger, query.RequestID)
	if err != nil {
		return nil, err
	}
	return uc.resolver.ResolveReport(ctx, r.ReportLocation()), nil
}
