package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/game"
)

var (
	sweepLevelID  int       // Level to sweep
	sweepComputes []int     // Compute values to sweep
	sweepBWs      []float64 // Bandwidth values to sweep
	sweepDt       float64   // Fixed step for every cell
)

// sweepCmd maps throughput over the compute × bandwidth grid
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep compute and bandwidth and print the roofline",
	Long:  "Run one level for its full duration at every compute × bandwidth pair and print throughput, the dominant bottleneck and the knee where more baristas stop helping.",
	Run: func(cmd *cobra.Command, args []string) {
		lv, idx, err := levelByID(sweepLevelID)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		base := sim.NewConfig(1, 1.0, batch, sim.Quality(quality))
		l := lv[idx]
		logrus.Infof("Sweeping level %d: %d computes × %d bandwidths", l.ID, len(sweepComputes), len(sweepBWs))

		points, err := game.Sweep(l, idx, base, sweepComputes, sweepBWs, seed, sweepDt)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		printSweep(cmd.OutOrStdout(), l, points)
	},
}

func init() {
	sweepCmd.Flags().IntVar(&sweepLevelID, "level", 4, "Level id to sweep")
	sweepCmd.Flags().IntVar(&batch, "batch", 0, "Batch size, 0 disables batching (levels that unlock it)")
	sweepCmd.Flags().IntVar(&quality, "quality", int(sim.QualityMedium), "Quality tier: 0 low, 1 medium, 2 high")
	sweepCmd.Flags().Int64Var(&seed, "seed", 42, "Seed shared by every cell")
	sweepCmd.Flags().IntSliceVar(&sweepComputes, "computes", []int{1, 2, 3, 4, 5, 6, 7, 8}, "Comma-separated compute values")
	sweepCmd.Flags().Float64SliceVar(&sweepBWs, "bws", []float64{0.5, 1.0, 1.5, 2.0}, "Comma-separated bandwidth multipliers")
	sweepCmd.Flags().Float64Var(&sweepDt, "dt", 0.05, "Fixed step in seconds")
}
