package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/levels"
)

var (
	logLevel   string // Log verbosity level
	levelsPath string // Optional YAML level table replacing the built-in one
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "barista",
	Short: "Coffee-line simulator for throughput, tail latency and the roofline model",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadLevels returns the level table from --levels, or the built-in one.
func loadLevels() ([]sim.Level, error) {
	if levelsPath == "" {
		return levels.Defaults(), nil
	}
	return levels.Load(levelsPath)
}

// levelByID finds the level with the given id and its index in the table.
func levelByID(id int) ([]sim.Level, int, error) {
	lv, err := loadLevels()
	if err != nil {
		return nil, 0, err
	}
	idx, err := levels.Index(lv, id)
	if err != nil {
		return nil, 0, err
	}
	return lv, idx, nil
}

// init sets up persistent flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&levelsPath, "levels", "", "YAML level table (defaults to the built-in levels)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
}
