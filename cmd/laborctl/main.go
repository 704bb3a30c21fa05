// Command laborctl is the operator tool for the labor card service.
//
// Usage:
//
//	laborctl migrate up
//	laborctl migrate status
//	laborctl export scrap --from 2026-03-01 --to 2026-03-31 [--out file.xlsx]
//	laborctl export stats --from 2026-03-01 --to 2026-03-31 [--out file.xlsx]
//	laborctl seed --file plant.yaml [--phase areas,orders] [--dry-run]
//	laborctl shift [--at 2026-03-01T14:05:00Z] [--tz Europe/Kyiv]
//
// Commands that touch the database read the same configuration as the server,
// or the file named by --config.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/app"
	"github.com/heartmarshall/laborcard-backend/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// configPath is set by the persistent --config flag.
var configPath string

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "laborctl",
		Short:         "Operate the labor card service",
		SilenceUsage:  true,
		Version:       app.BuildVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if timeout <= 0 {
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			cobra.OnFinalize(cancel)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(newMigrateCmd(), newExportCmd(), newSeedCmd(), newShiftCmd())
	return root
}

// env is what database-backed commands share.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func (e *env) Close() {
	e.pool.Close()
}

func openEnv(ctx context.Context) (*env, error) {
	load := config.Load
	if configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFile(configPath) }
	}
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, pool: pool}, nil
}
