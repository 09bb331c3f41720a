package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/audio"
	"github.com/barista-pipeline/barista/sim/game"
	"github.com/barista-pipeline/barista/sim/layout"
	"github.com/barista-pipeline/barista/sim/render"
)

var (
	volume  float64 // Master volume, 1 = unchanged
	mute    bool    // Start with sound off
	logFile string  // Where logs go while the screen is in use
)

// playCmd runs the interactive terminal game
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		lv, idx, err := levelByID(levelID)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		cfg := sim.NewConfig(compute, bw, batch, sim.Quality(quality))
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid levers: %v", err)
		}

		// stderr belongs to the screen until it is finalized
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				logrus.Fatalf("Opening log file: %v", err)
			}
			defer f.Close()
			logrus.SetOutput(f)
		} else {
			logrus.SetOutput(io.Discard)
		}
		defer logrus.SetOutput(os.Stderr)

		screen, err := tcell.NewScreen()
		if err != nil {
			logrus.SetOutput(os.Stderr)
			logrus.Fatalf("Failed to create screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			logrus.SetOutput(os.Stderr)
			logrus.Fatalf("Failed to initialize screen: %v", err)
		}
		defer screen.Fini()

		player := audio.NewPlayer(audio.DefaultSampleRate, volume)
		defer player.Close()
		cues := audio.NewCues(player, audio.WallClock())
		if mute {
			cues.Toggle()
		}

		s := game.NewSession(lv, cfg, layout.DefaultWorld(), sim.NewSimulationKey(seed), cues)
		s.SetLevel(idx)
		s.SetConfig(cfg)
		term := render.NewTerminal(screen, s, cues)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		term.Run(ctx)
	},
}

func init() {
	addLeverFlags(playCmd)
	playCmd.Flags().Float64Var(&volume, "volume", 0.6, "Master volume (1 leaves cues unchanged, 0 is silent)")
	playCmd.Flags().BoolVar(&mute, "mute", false, "Start with sound off")
	playCmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file while playing (discarded otherwise)")
}
