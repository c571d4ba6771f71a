// Package bootstrap loads configuration, the logger and the database for
// CLI commands.
package bootstrap

import (
	"fmt"

	"github.com/saase/requesthub/internal/infrastructure/config"
	"github.com/saase/requesthub/internal/infrastructure/database"
	"github.com/saase/requesthub/internal/shared/logger"
)

// Config loads configuration for env and initializes the global logger.
func Config(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Database is Config plus an open process database connection. Callers
// close it with database.Close.
func Database(env string) (*config.Config, logger.Interface, error) {
	cfg, log, err := Config(env)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}
