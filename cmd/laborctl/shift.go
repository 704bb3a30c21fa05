package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/laborcard-backend/internal/service/reference"
)

func newShiftCmd() *cobra.Command {
	var at, tz string

	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Print the shift for an instant in plant time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("load time zone %q: %w", tz, err)
			}

			t := time.Now()
			if at != "" {
				t, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
			}

			svc := reference.NewService(slog.New(slog.DiscardHandler), loc, nil, nil)
			printShift(cmd.OutOrStdout(), svc.ShiftAt(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Instant to classify, RFC 3339 (default now)")
	cmd.Flags().StringVar(&tz, "tz", "Europe/Kyiv", "Plant time zone")
	return cmd
}

func printShift(w io.Writer, info reference.ShiftInfo) {
	fmt.Fprintf(w, "shift %d (%s-%s) at %s\n",
		int(info.Shift), info.Start, info.End, info.LocalTime.Format("2006-01-02 15:04 MST"))
}
