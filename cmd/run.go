package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/audio"
	"github.com/barista-pipeline/barista/sim/game"
	"github.com/barista-pipeline/barista/sim/layout"
	"github.com/barista-pipeline/barista/sim/trace"
)

var (
	// player levers
	levelID int     // Level to play
	compute int     // Number of baristas
	bw      float64 // Pantry bandwidth multiplier
	batch   int     // Batch size, 0 = off
	quality int     // Quality tier 0/1/2

	// run parameters
	seed          int64   // Seed for the simulation RNG
	dt            float64 // Fixed step in seconds
	speed         int     // Speed multiplier
	tracePath     string  // Output file for the YAML timeline
	traceLevel    string  // Trace detail level
	traceInterval float64 // Seconds between trace samples
	wavPath       string  // Output file for the soundtrack
)

// runOptions is everything one headless run needs.
type runOptions struct {
	Levels        []sim.Level
	LevelIdx      int
	Config        sim.Config
	Seed          int64
	Dt            float64
	Speed         int
	TraceLevel    trace.TraceLevel
	TraceInterval float64
}

// runArtifacts carries the optional outputs of a run.
type runArtifacts struct {
	Trace      *trace.SimulationTrace
	Soundtrack *audio.Soundtrack
}

// playLevel runs one level to completion without a front end. A trace is
// recorded unless opts.TraceLevel is none; a soundtrack is recorded when
// withSound is set.
func playLevel(opts runOptions, withSound bool) (game.Result, runArtifacts, error) {
	var art runArtifacts
	if err := opts.Config.Validate(); err != nil {
		return game.Result{}, art, fmt.Errorf("invalid levers: %w", err)
	}

	s := game.NewSession(opts.Levels, opts.Config, layout.DefaultWorld(), sim.NewSimulationKey(opts.Seed))
	s.SetLevel(opts.LevelIdx)
	// SetLevel may have forced locked levers
	s.SetConfig(opts.Config)
	if err := s.SetSpeed(opts.Speed); err != nil {
		return game.Result{}, art, err
	}

	if opts.TraceLevel != trace.TraceLevelNone {
		rec := game.NewRecorder(trace.TraceConfig{Level: opts.TraceLevel, SampleInterval: opts.TraceInterval}, s.Level())
		s.AddListener(rec)
		art.Trace = rec.Trace
	}
	if withSound {
		art.Soundtrack = audio.NewSoundtrack(audio.DefaultSampleRate)
		s.AddListener(audio.NewCues(art.Soundtrack, nil))
	}

	r, err := game.Run(s, opts.Dt)
	if err != nil {
		return game.Result{}, art, err
	}
	return r, art, nil
}

// runCmd plays one level headlessly and reports the result
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one level headlessly",
	Run: func(cmd *cobra.Command, args []string) {
		lv, idx, err := levelByID(levelID)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (none, events, samples)", traceLevel)
		}
		tl := trace.TraceLevel(traceLevel)
		if tracePath == "" || tl == "" {
			tl = trace.TraceLevelNone
		}

		opts := runOptions{
			Levels:        lv,
			LevelIdx:      idx,
			Config:        sim.NewConfig(compute, bw, batch, sim.Quality(quality)),
			Seed:          seed,
			Dt:            dt,
			Speed:         speed,
			TraceLevel:    tl,
			TraceInterval: traceInterval,
		}
		logrus.Infof("Starting level %d with compute=%d bw=%.2f batch=%d quality=%s seed=%d",
			levelID, compute, bw, batch, opts.Config.Quality, seed)

		r, art, err := playLevel(opts, wavPath != "")
		if err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		printResult(cmd.OutOrStdout(), r)

		if art.Trace != nil {
			if err := writeTrace(tracePath, art.Trace); err != nil {
				logrus.Fatalf("Writing trace: %v", err)
			}
			printTraceSummary(cmd.OutOrStdout(), trace.Summarize(art.Trace))
		}
		if art.Soundtrack != nil {
			if err := writeWAV(wavPath, art.Soundtrack, r.Elapsed+1); err != nil {
				logrus.Fatalf("Writing soundtrack: %v", err)
			}
			logrus.Infof("Wrote %d cues to %s", art.Soundtrack.Len(), wavPath)
		}
	},
}

func writeTrace(path string, st *trace.SimulationTrace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := trace.WriteYAML(f, st); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeWAV(path string, t *audio.Soundtrack, length float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WriteWAV(f, length); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// addLeverFlags registers the lever flags shared by run, sweep and play.
func addLeverFlags(c *cobra.Command) {
	c.Flags().IntVar(&levelID, "level", 1, "Level id to play")
	c.Flags().IntVar(&compute, "compute", 1, "Number of baristas (stations)")
	c.Flags().Float64Var(&bw, "bw", 1.0, "Pantry bandwidth multiplier")
	c.Flags().IntVar(&batch, "batch", 0, "Batch size, 0 disables batching (levels that unlock it)")
	c.Flags().IntVar(&quality, "quality", int(sim.QualityMedium), "Quality tier: 0 low, 1 medium, 2 high (levels that unlock it)")
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for the simulation RNG")
}

func init() {
	addLeverFlags(runCmd)
	runCmd.Flags().Float64Var(&dt, "dt", 0.05, "Fixed step in seconds")
	runCmd.Flags().IntVar(&speed, "speed", 1, "Speed multiplier (1, 2 or 3)")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "Write the run timeline as YAML to this file")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelSamples), "Trace detail: none, events, samples")
	runCmd.Flags().Float64Var(&traceInterval, "trace-interval", trace.DefaultSampleInterval, "Seconds between trace samples")
	runCmd.Flags().StringVar(&wavPath, "wav", "", "Write the run's sound cues as a WAV file")
}
