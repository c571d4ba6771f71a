package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saase/requesthub/internal/domain/setting"
	"github.com/saase/requesthub/internal/infrastructure/persistence/mappers"
	"github.com/saase/requesthub/internal/infrastructure/persistence/models"
	db "github.com/saase/requesthub/internal/shared/db"
)

type CompanySettingsRepository struct {
	db     *gorm.DB
	mapper mappers.CompanySettingsMapper
}

func NewCompanySettingsRepository(db *gorm.DB) *CompanySettingsRepository {
	return &CompanySettingsRepository{
		db:     db,
		mapper: mappers.NewCompanySettingsMapper(),
	}
}

// Get returns setting.ErrSettingsNotFound before the first Save.
func (r *CompanySettingsRepository) Get(ctx context.Context) (*setting.CompanySettings, error) {
	var model models.CompanySettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("settings_key = ?", models.DefaultSettingsKey).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, setting.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to load company settings: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Save upserts the single settings row.
func (r *CompanySettingsRepository) Save(ctx context.Context, s *setting.CompanySettings) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "settings_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save company settings: %w", err)
	}

	return nil
}
