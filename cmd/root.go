package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/patrick-morrison/swantides/pkg/bom"
	"github.com/patrick-morrison/swantides/pkg/pipeline"
)

var cfgFile string

// env holds runtime knobs taken from SWANTIDES_* environment variables.
type env struct {
	LogLevel string `default:"info" split_words:"true"`
}

// rootCmd represents the base command when called without any subcommands.
// The bare command runs the whole extraction batch.
var rootCmd = &cobra.Command{
	Use:   "swantides",
	Short: "Extract Swan River tide predictions from BOM tide chart PDFs",
	Long: `Extracts tide predictions (date, time, height, high/low) from the
Bureau of Meteorology's fixed-layout yearly tide chart PDFs for Fremantle
and Barrack Street, validates calendar coverage, and writes one JSON file
per location. Subcommands derive hourly heights, daylight low-tide windows,
and SVG day charts from the extracted files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return pipeline.New(cfg, newLogger()).Run()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./swantides.yaml)")
}

// initConfig reads in the config file and environment variables if set.
// Everything has a default, so running with no config at all extracts the
// two stock locations for the current chart year.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("swantides")
	}

	viper.SetDefault("year", 2026)
	viper.SetDefault("high_threshold", 0.8)
	viper.SetDefault("min_per_day", 1)
	viper.SetDefault("max_per_day", 4)
	viper.SetDefault("locations", []map[string]any{
		{"name": "Fremantle", "pdf": "IDO59001_2026_WA_TP015.pdf", "output": "tides_fremantle.json"},
		{"name": "Barrack Street", "pdf": "IDO59001_2026_WA_TP062.pdf", "output": "tides_barrack.json"},
	})

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the pipeline configuration from viper.
func loadConfig() (pipeline.Config, error) {
	var cfg pipeline.Config

	cfg.Year = viper.GetInt("year")
	cfg.HighThreshold = viper.GetFloat64("high_threshold")
	cfg.MinPerDay = viper.GetInt("min_per_day")
	cfg.MaxPerDay = viper.GetInt("max_per_day")
	if err := viper.UnmarshalKey("locations", &cfg.Locations); err != nil {
		return cfg, fmt.Errorf("bad locations config: %w", err)
	}

	perth, err := time.LoadLocation("Australia/Perth")
	if err != nil {
		return cfg, err
	}
	cfg.Layout = bom.DefaultLayout(cfg.Year, perth)

	return cfg, nil
}

// newLogger builds the process logger from the environment.
func newLogger() *slog.Logger {
	var e env
	if err := envconfig.Process("swantides", &e); err != nil {
		fmt.Fprintln(os.Stderr, "bad environment, using defaults:", err)
	}

	level := slog.LevelInfo
	switch e.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
