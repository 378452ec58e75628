package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	userrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/laborcrm-backend/internal/auth"
	authsvc "github.com/heartmarshall/laborcrm-backend/internal/service/auth"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API bearer tokens",
	}

	var email string
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue an access token for an active user",
		Long: `Issue prints a signed access token for the user with the given email.
The token carries the user's current role and expires after
auth.access_token_ttl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			svc := authsvc.NewService(e.log, userrepo.New(e.pool), jwt)

			token, err := svc.IssueToken(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&email, "email", "", "user email (required)")
	_ = issue.MarkFlagRequired("email")

	cmd.AddCommand(issue)
	return cmd
}
