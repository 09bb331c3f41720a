package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/barista-pipeline/barista/sim"
)

// Lever ranges the terminal front end allows.
const (
	MinCompute = 1
	MaxCompute = 8
	MinBW      = 0.5
	MaxBW      = 2.0
	BWStep     = 0.1
	MaxBatch   = 6
)

// StatLine is the scoreboard line: progress, P95 (or lost customers once any
// have left) and whole seconds left.
func StatLine(st *sim.State, l sim.Level) string {
	secs := int(math.Max(0, math.Ceil(st.TLeft)))
	if st.Lost > 0 {
		return fmt.Sprintf("Served %d/%d  •  Lost %d  •  %ds", st.Served, l.Goal, st.Lost, secs)
	}
	p95 := "-"
	if p, ok := st.P95Value(); ok {
		p95 = fmt.Sprintf("%.1fs", p)
	}
	return fmt.Sprintf("Served %d/%d  •  P95 %s  •  %ds", st.Served, l.Goal, p95, secs)
}

// StreakText describes a serve streak of three or more; shorter streaks are
// not shown.
func StreakText(streak int) string {
	switch {
	case streak >= 10:
		return fmt.Sprintf("🔥🔥🔥 %dx streak", streak)
	case streak >= 5:
		return fmt.Sprintf("🔥🔥 %dx streak", streak)
	case streak >= 3:
		return fmt.Sprintf("🔥 %dx streak", streak)
	}
	return ""
}

// LeverLine lists the levers the level exposes with their keys.
func LeverLine(cfg sim.Config, l sim.Level) string {
	parts := []string{
		fmt.Sprintf("Baristas %d [-/+]", cfg.Compute),
		fmt.Sprintf("Pantry %.2f× [[/]]", cfg.BW),
	}
	if l.Unlock.Batch {
		batch := "Off"
		if cfg.Batch > 0 {
			batch = fmt.Sprint(cfg.Batch)
		}
		parts = append(parts, fmt.Sprintf("Batch %s [b]", batch))
	}
	if l.Unlock.Quality {
		parts = append(parts, fmt.Sprintf("Quality %s [q]", cfg.Quality))
	}
	return strings.Join(parts, "   ")
}

// StepCompute moves the barista lever by delta within its range.
func StepCompute(cfg sim.Config, delta int) sim.Config {
	cfg.Compute = min(MaxCompute, max(MinCompute, cfg.Compute+delta))
	return cfg
}

// StepBW moves the pantry lever by delta steps within its range.
func StepBW(cfg sim.Config, delta int) sim.Config {
	bw := cfg.BW + float64(delta)*BWStep
	cfg.BW = math.Round(math.Min(MaxBW, math.Max(MinBW, bw))*100) / 100
	return cfg
}

// CycleBatch walks batch sizes Off, 2 .. MaxBatch and back to Off.
func CycleBatch(cfg sim.Config) sim.Config {
	switch {
	case cfg.Batch >= MaxBatch:
		cfg.Batch = 0
	case cfg.Batch < 2:
		cfg.Batch = 2
	default:
		cfg.Batch++
	}
	return cfg
}

// CycleQuality walks Low, Medium, High.
func CycleQuality(cfg sim.Config) sim.Config {
	cfg.Quality = (cfg.Quality + 1) % 3
	return cfg
}
