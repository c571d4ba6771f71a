package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/saase/requesthub/internal/infrastructure/config"
	"github.com/saase/requesthub/internal/infrastructure/database"
	"github.com/saase/requesthub/internal/infrastructure/migration"
	httpRouter "github.com/saase/requesthub/internal/interfaces/http"
	"github.com/saase/requesthub/internal/interfaces/cli/bootstrap"
	"github.com/saase/requesthub/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the request hub HTTP server with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Database(mapEnvToGinMode(env))
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handleMigrations(ctx, cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	router, err := httpRouter.NewRouter(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Errorw("failed to start server", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck && !autoMigrate {
		log.Infow("skipping migration check")
		return nil
	}

	manager, err := migration.NewManager(&cfg.Database)
	if err != nil {
		return err
	}

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}
		return manager.Migrate(ctx, database.Get())
	}

	goose, err := manager.Goose()
	if err != nil {
		log.Infow("migration check skipped", "strategy", manager.GetStrategy().GetName())
		return nil
	}
	version, err := goose.GetVersion(ctx, database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version)

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
