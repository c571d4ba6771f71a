package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saase/requesthub/internal/infrastructure/auth"
	"github.com/saase/requesthub/internal/interfaces/cli/bootstrap"
	"github.com/saase/requesthub/internal/shared/constants"
)

var (
	env     string
	role    string
	subject string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newIssueCommand())

	return cmd
}

func newIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token",
		Long:  `Issue an HS256 access token for the admin API, signed with auth.jwt.secret.`,
		RunE:  runIssue,
	}

	cmd.Flags().StringVar(&role, "role", constants.RoleAdmin, "Role claim (admin or client)")
	cmd.Flags().StringVar(&subject, "subject", "operator", "Subject claim")

	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	if role != constants.RoleAdmin && role != constants.RoleClient {
		return fmt.Errorf("unknown role %q", role)
	}

	cfg, _, err := bootstrap.Config(env)
	if err != nil {
		return err
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	signed, err := svc.Generate(subject, role)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
