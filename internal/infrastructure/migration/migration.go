package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/saase/requesthub/internal/infrastructure/persistence/models"
	"github.com/saase/requesthub/internal/shared/config"
	"github.com/saase/requesthub/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks gorm AutoMigrate when cfg.AutoMigrate is set and the
// versioned goose scripts otherwise.
func NewManager(cfg *config.DatabaseConfig) (*Manager, error) {
	if cfg.AutoMigrate {
		return NewManagerWithStrategy(NewGormAutoMigrateStrategy()), nil
	}
	strategy, err := NewGooseStrategy(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate brings the schema up to date for every persisted model.
func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db, models.All()...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Goose returns the versioned strategy, or an error under AutoMigrate.
func (m *Manager) Goose() (*GooseStrategy, error) {
	g, ok := m.strategy.(*GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("strategy %s does not support versioned operations", m.strategy.GetName())
	}
	return g, nil
}
