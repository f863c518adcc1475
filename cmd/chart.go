package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrick-morrison/swantides/pkg/report"
	"github.com/patrick-morrison/swantides/pkg/sunset"
	"github.com/patrick-morrison/swantides/pkg/visualize"
)

var (
	chartDate string
	chartOut  string
)

// chartCmd renders one day of an extracted tide series as an SVG.
var chartCmd = &cobra.Command{
	Use:   "chart <report.json>",
	Short: "Render an SVG tide chart for one day of an extracted report",
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

		day, err := time.ParseInLocation("2006-01-02", chartDate, place.Location)
		if err != nil {
			return fmt.Errorf("bad --date %q: %w", chartDate, err)
		}

		entries := doc.Tides
		if len(entries) == 0 {
			return fmt.Errorf("%s has no tide entries", args[0])
		}
		entries.Sort()
		entries.Rebase(place.Location)
		sunEvents := sunset.GetSunEvents(day, 2*24*time.Hour, place)

		img := visualize.NewTidal(entries, sunEvents)
		img.SetDate(day)

		out := os.Stdout
		if chartOut != "" {
			f, err := os.Create(chartOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		if _, err := img.Encode(out); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartDate, "date", "", "day to render, YYYY-MM-DD")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output file (default stdout)")
	chartCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(chartCmd)
}
