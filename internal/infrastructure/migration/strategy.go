package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/saase/requesthub/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(ctx context.Context, db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// GormAutoMigrateStrategy derives the schema from the model structs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.WithComponent("migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(models))

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// MigrationStatus is one script and whether it has been applied.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// GooseStrategy runs the embedded SQL scripts for one dialect.
type GooseStrategy struct {
	dialect goose.Dialect
	fsys    fs.FS
	logger  logger.Interface
}

// NewGooseStrategy selects the script set for driver (mysql, postgres or sqlite).
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	var (
		dialect goose.Dialect
		dir     string
	)
	switch driver {
	case "mysql", "":
		dialect, dir = goose.DialectMySQL, "scripts/mysql"
	case "postgres":
		dialect, dir = goose.DialectPostgres, "scripts/postgres"
	case "sqlite":
		dialect, dir = goose.DialectSQLite3, "scripts/sqlite3"
	default:
		return nil, fmt.Errorf("no migration scripts for driver %q", driver)
	}

	fsys, err := fs.Sub(scripts, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}

	return &GooseStrategy{
		dialect: dialect,
		fsys:    fsys,
		logger:  logger.WithComponent("migration.goose"),
	}, nil
}

func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	p, err := goose.NewProvider(s.dialect, sqlDB, s.fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB, _ ...interface{}) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	currentVersion, err := p.GetDBVersion(ctx)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("starting goose migration", "dialect", s.dialect, "version", currentVersion)

	results, err := p.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion,
		"applied", len(results))

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// MigrateDown rolls back steps migrations, stopping early at version zero.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	s.logger.Infow("starting down migration", "steps", steps)
	for i := 0; i < steps; i++ {
		version, err := p.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		if version == 0 {
			break
		}
		if _, err := p.Down(ctx); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	p, err := s.provider(db)
	if err != nil {
		return 0, err
	}

	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]MigrationStatus, error) {
	p, err := s.provider(db)
	if err != nil {
		return nil, err
	}

	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, MigrationStatus{
			Version: st.Source.Version,
			Path:    st.Source.Path,
			Applied: st.State == goose.StateApplied,
		})
	}
	return out, nil
}
