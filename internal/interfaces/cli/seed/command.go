package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saase/requesthub/internal/infrastructure/database"
	"github.com/saase/requesthub/internal/infrastructure/persistence/seeds"
	"github.com/saase/requesthub/internal/infrastructure/repository"
	"github.com/saase/requesthub/internal/interfaces/cli/bootstrap"
	shareddb "github.com/saase/requesthub/internal/shared/db"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo requests and settings",
		Long:  `Load requests and company settings from a YAML seed file. Requests that already exist are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seeds/demo.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := seeds.LoadFile(file)
	if err != nil {
		return err
	}

	_, log, err := bootstrap.Database(env)
	if err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	seeder := seeds.NewSeeder(
		repository.NewRequestRepository(db),
		repository.NewCompanySettingsRepository(db),
		shareddb.NewTransactionManager(db),
		log,
	)

	result, err := seeder.Apply(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d requests (%d skipped), settings updated: %t\n",
		result.Created, result.Skipped, result.SettingsUpdated)
	return nil
}
