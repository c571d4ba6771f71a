package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/saase/requesthub/internal/interfaces/cli/migrate"
	"github.com/saase/requesthub/internal/interfaces/cli/seed"
	"github.com/saase/requesthub/internal/interfaces/cli/server"
	"github.com/saase/requesthub/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "requesthub",
		Short:        "Request hub - client request intake and review",
		Long:         `requesthub serves the public request intake, the client hub and the admin back office, with migration, seeding and token tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
