// Package cli implements crmctl, the operator command line: schema
// migrations, user provisioning, token issuance and notification upkeep.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcrm-backend/internal/app"
	"github.com/heartmarshall/laborcrm-backend/internal/config"
)

// env is what most commands need: the loaded configuration, a logger and
// an open pool.
type env struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool
}

func (e *env) close() {
	e.pool.Close()
}

// configPath is the --config flag. Empty defers to CONFIG_PATH.
var configPath string

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// openEnv loads configuration and connects to the database. Tests replace it.
var openEnv = func(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	dbCfg := cfg.Database
	dbCfg.AppName = "crmctl"
	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return &env{cfg: cfg, log: logger, pool: pool}, nil
}

// NewRootCmd builds the crmctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crmctl",
		Short: "crmctl - operator tool for the labor-law CRM backend",
		Long: `crmctl manages the CRM database and accounts out of band:
it applies schema migrations, provisions users, issues API tokens
and purges old notifications.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newMigrateCmd(),
		newUsersCmd(),
		newTokenCmd(),
		newNotificationsCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
