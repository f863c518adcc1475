package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrick-morrison/swantides/pkg/meta"
	"github.com/patrick-morrison/swantides/pkg/report"
	"github.com/patrick-morrison/swantides/pkg/sunset"
)

// goodtimesCmd cross-references an extracted tide series with daylight to
// list good windows on the river.
var goodtimesCmd = &cobra.Command{
	Use:   "goodtimes <report.json>",
	Short: "List daylight low-tide windows for an extracted report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := report.ReadFile(args[0])
		if err != nil {
			return err
		}
		place, ok := sunset.PlaceFor(doc.Location)
		if !ok {
			return fmt.Errorf("no coordinates on file for location %q", doc.Location)
		}

		entries := doc.Tides
		entries.Sort()
		if len(entries) == 0 {
			return fmt.Errorf("%s has no tide entries", args[0])
		}
		// The file's times are wall clock in the chart's zone; pin them
		// there so the daylight comparison holds on any machine.
		entries.Rebase(place.Location)

		start := entries[0].Time
		span := entries[len(entries)-1].Time.Sub(start) + 24*time.Hour
		sunEvents := sunset.GetSunEvents(start, span, place)

		goodTimes := meta.GoodTimes(meta.Conditions{Tides: entries, SunEvents: sunEvents})
		for _, gt := range goodTimes {
			fmt.Printf("%s\n", gt.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goodtimesCmd)
}
