package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
)

func newMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (default: $DATABASE_DSN or config file)")

	withMigrator := func(fn func(ctx context.Context, cmd *cobra.Command, m *postgres.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			resolved, err := resolveDSN(dsn)
			if err != nil {
				return err
			}
			m, err := postgres.NewMigrator(ctx, resolved)
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck
			return fn(ctx, cmd, m)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, cmd *cobra.Command, m *postgres.Migrator) error {
				applied, err := m.Up(ctx)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
					return nil
				}
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "Applied %05d\n", v)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, cmd *cobra.Command, m *postgres.Migrator) error {
				rolled, err := m.Down(ctx)
				if err != nil {
					return err
				}
				for _, v := range rolled {
					fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %05d\n", v)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(ctx context.Context, cmd *cobra.Command, m *postgres.Migrator) error {
				list, err := m.Status(ctx)
				if err != nil {
					return err
				}
				for _, s := range list {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s  %s\n", s.Version, state, s.Path)
				}
				return nil
			}),
		},
	)
	return cmd
}

// resolveDSN prefers the flag, then DATABASE_DSN, then the full config.
// Migrations must run before the auth settings are provisioned, so the
// config file is only read as a last resort.
func resolveDSN(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", fmt.Errorf("no --dsn given: %w", err)
	}
	return cfg.Database.DSN, nil
}
