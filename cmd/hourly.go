package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrick-morrison/swantides/pkg/report"
	"github.com/patrick-morrison/swantides/pkg/splines"
)

var hourlyStep time.Duration

// hourlyCmd interpolates water heights between the chart's printed
// extrema and prints a regular time series.
var hourlyCmd = &cobra.Command{
	Use:   "hourly <report.json>",
	Short: "Print interpolated water heights for an extracted report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := report.ReadFile(args[0])
		if err != nil {
			return err
		}
		entries := doc.Tides
		entries.Sort()
		if len(entries) < 2 {
			return fmt.Errorf("%s has %d entries, need at least 2 to interpolate", args[0], len(entries))
		}

		spl := splines.CurvesBetween(entries)
		tstart := entries[0].Time
		tend := entries[len(entries)-1].Time
		for t := tstart; !t.After(tend); t = t.Add(hourlyStep) {
			h := spl.Eval(t)
			if math.IsNaN(h) {
				continue
			}
			fmt.Printf("%s %.2f\n", t.Format("2006-01-02 15:04"), h)
		}
		return nil
	},
}

func init() {
	hourlyCmd.Flags().DurationVar(&hourlyStep, "step", time.Hour, "sampling step")
	rootCmd.AddCommand(hourlyCmd)
}
