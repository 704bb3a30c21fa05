package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			migrator, err := postgres.NewMigrator(e.pool)
			if err != nil {
				return err
			}
			defer migrator.Close()

			return migrator.Up(cmd.Context(), e.logger)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			migrator, err := postgres.NewMigrator(e.pool)
			if err != nil {
				return err
			}
			defer migrator.Close()

			states, err := migrator.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printMigrations(cmd, states)
		},
	})

	return cmd
}

func printMigrations(cmd *cobra.Command, states []postgres.MigrationState) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, s := range states {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.File)
	}
	return tw.Flush()
}
