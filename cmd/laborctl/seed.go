package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/laborcard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/laborcard-backend/internal/adapter/postgres/plant"
	"github.com/heartmarshall/laborcard-backend/internal/seeder"
)

func newSeedCmd() *cobra.Command {
	var (
		file   string
		phases []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load plant reference data from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := seeder.LoadPlant(file)
			if err != nil {
				return err
			}
			if dryRun {
				printPlantSummary(cmd.OutOrStdout(), p)
				return nil
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			pipeline := seeder.NewPipeline(e.logger, plant.New(e.pool), postgres.NewTxManager(e.pool))
			if err := pipeline.Run(cmd.Context(), p, phases); err != nil {
				return err
			}
			return printSeedResults(cmd.OutOrStdout(), pipeline.Results())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "plant.yaml", "Reference data file")
	cmd.Flags().StringSliceVar(&phases, "phase", nil, "Phases to run: areas, scrap_types, workers, orders (default all)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without touching the database")
	return cmd
}

func printPlantSummary(w io.Writer, p *seeder.Plant) {
	ops, subs := 0, 0
	for _, a := range p.Areas {
		ops += len(a.Operations)
		for _, op := range a.Operations {
			subs += len(op.Subtypes)
		}
	}
	fmt.Fprintf(w, "areas=%d operations=%d subtypes=%d scrap_types=%d workers=%d orders=%d\n",
		len(p.Areas), ops, subs, len(p.ScrapTypes), len(p.Workers), len(p.Orders))
}

func printSeedResults(w io.Writer, results map[string]seeder.PhaseResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tUPSERTED\tDURATION")
	for _, phase := range []string{seeder.PhaseAreas, seeder.PhaseScrapTypes, seeder.PhaseWorkers, seeder.PhaseOrders} {
		r, ok := results[phase]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", phase, r.Upserted, r.Duration.Round(time.Millisecond))
	}
	return tw.Flush()
}
