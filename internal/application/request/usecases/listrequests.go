package usecases

import (
	"context"
	"strings"

	"github.com/saase/requesthub/internal/application/request/dto"
	"github.com/saase/requesthub/internal/domain/request"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

type ListRequestsQuery struct {
	RequestID string
	Status    string
	Page      int
	Limit     int
}

type ListRequestsResult struct {
	Items []*dto.RequestDTO
	Total int64
	Page  int
	Limit int
	Pages int
}

type ListRequestsUseCase struct {
	repo   request.Repository
	logger logger.Interface
}

func NewListRequestsUseCase(repo request.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists requests newest first. An unknown status filter matches
// nothing rather than failing.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	p := utils.ValidatePagination(query.Page, query.Limit)

	filter, ok := buildFilter(query.RequestID, query.Status)
	if !ok {
		uc.logger.Debugw("unknown status filter", "status", query.Status)
		return &ListRequestsResult{Items: []*dto.RequestDTO{}, Page: p.Page, Limit: p.Limit}, nil
	}
	filter.Page = p.Page
	filter.Limit = p.Limit

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, errors.NewPersistenceError("failed to list requests").WithCause(err)
	}

	return &ListRequestsResult{
		Items: dto.ToRequestDTOs(items),
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: utils.TotalPages(total, p.Limit),
	}, nil
}

// buildFilter reports false when status is set but not an enumerated value.
func buildFilter(requestID, status string) (request.Filter, bool) {
	filter := request.Filter{RequestID: strings.TrimSpace(requestID)}
	if status = strings.TrimSpace(status); status != "" {
		s, err := vo.NewRequestStatus(status)
		if err != nil {
			return filter, false
		}
		filter.Status = &s
	}
	return filter, true
}
