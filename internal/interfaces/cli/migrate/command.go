package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saase/requesthub/internal/infrastructure/database"
	"github.com/saase/requesthub/internal/infrastructure/migration"
	"github.com/saase/requesthub/internal/interfaces/cli/bootstrap"
	"github.com/saase/requesthub/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending scripts, roll back and inspect status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func initEnv() (*migration.Manager, logger.Interface, error) {
	cfg, log, err := bootstrap.Database(env)
	if err != nil {
		return nil, nil, err
	}

	manager, err := migration.NewManager(&cfg.Database)
	if err != nil {
		_ = database.Close()
		return nil, nil, fmt.Errorf("failed to create migration manager: %w", err)
	}

	return manager, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	manager, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := manager.Migrate(contextOf(cmd), database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	manager, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	goose, err := manager.Goose()
	if err != nil {
		return fmt.Errorf("down migration is only supported with goose strategy: %w", err)
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := goose.MigrateDown(contextOf(cmd), database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	manager, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	goose, err := manager.Goose()
	if err != nil {
		return fmt.Errorf("status check is only supported with goose strategy: %w", err)
	}

	log.Infow("checking migration status", "environment", env)

	ctx := contextOf(cmd)
	version, err := goose.GetVersion(ctx, database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	statuses, err := goose.Status(ctx, database.Get())
	if err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n\n", version)
	for _, st := range statuses {
		state := "pending"
		if st.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "  %-8s %5d  %s\n", state, st.Version, st.Path)
	}

	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
