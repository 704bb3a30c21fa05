package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	refrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/reference"
	scraprepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/scrap"
	statsrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/stats"
	workcardrepo "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/workcard"
	"github.com/heartmarshall/laborcard-backend/internal/metrics"
	"github.com/heartmarshall/laborcard-backend/internal/service/report"
	scrapsvc "github.com/heartmarshall/laborcard-backend/internal/service/scrap"
)

type exportFunc func(svc *report.Service, ctx context.Context, w io.Writer, from, to string) error

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an XLSX report for a date range",
	}

	cmd.AddCommand(
		newExportKindCmd("scrap", "Export the scrap ledger", (*report.Service).ExportScrap),
		newExportKindCmd("stats", "Export production statistics", (*report.Service).ExportProduction),
	)
	return cmd
}

func newExportKindCmd(kind, short string, export exportFunc) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			svc := newReportService(e)

			if out == "" {
				out = report.Filename(filenameKind(kind), from, to)
			}
			return writeReport(out, func(w io.Writer) error {
				return export(svc, cmd.Context(), w, from, to)
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First plant-local day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last plant-local day, YYYY-MM-DD")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default derived from the range)")
	return cmd
}

func filenameKind(kind string) string {
	if kind == "stats" {
		return "production"
	}
	return kind
}

func newReportService(e *env) *report.Service {
	loc := e.cfg.Plant.Location
	scrap := scrapsvc.NewService(e.logger, loc, scraprepo.New(e.pool), refrepo.New(e.pool), workcardrepo.New(e.pool), metrics.New())
	return report.NewService(e.logger, loc, statsrepo.New(e.pool), scrap)
}

// writeReport renders into a temporary file next to path and renames it into
// place once the workbook is complete.
func writeReport(path string, render func(io.Writer) error, stdout io.Writer) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".laborctl-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("move report into place: %w", err)
	}

	fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}
