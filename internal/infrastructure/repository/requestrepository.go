package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/saase/requesthub/internal/domain/request"
	"github.com/saase/requesthub/internal/infrastructure/persistence/mappers"
	"github.com/saase/requesthub/internal/infrastructure/persistence/models"
	db "github.com/saase/requesthub/internal/shared/db"
)

// mutableRequestColumns are the only columns Update writes.
var mutableRequestColumns = []string{
	"status",
	"report_location",
	"executive_summary",
	"technical_analysis",
	"implementation_strategy",
	"financial_optimization",
	"risk_assessment",
	"next_steps",
	"updated_at",
}

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces NULL summary columns and unchanged values to be written.
	result := tx.
		Model(&models.RequestModel{}).
		Where("request_id = ?", model.RequestID).
		Select(mutableRequestColumns).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_id = ?", requestID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, request.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns matches newest first. A zero Limit returns every match.
func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RequestModel{})

	if filter.RequestID != "" {
		query = query.Where("request_id = ?", filter.RequestID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}

	var requestModels []models.RequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]*request.Request, len(requestModels))
	for i := range requestModels {
		req, err := r.mapper.ToDomain(&requestModels[i])
		if err != nil {
			return nil, 0, err
		}
		requests[i] = req
	}

	return requests, total, nil
}
