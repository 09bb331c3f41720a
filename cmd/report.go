package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/game"
	"github.com/barista-pipeline/barista/sim/trace"
)

// printResult writes the end-of-level report.
func printResult(w io.Writer, r game.Result) {
	fmt.Fprintln(w, "=== Level Result ===")
	fmt.Fprintf(w, "Level                : %d (%s)\n", r.Level.ID, r.Level.Name)
	fmt.Fprintf(w, "Outcome              : %s\n", r.Outcome)
	fmt.Fprintf(w, "Served               : %d/%d\n", r.Served, r.Level.Goal)
	fmt.Fprintf(w, "Arrivals             : %d\n", r.Arrivals)
	fmt.Fprintf(w, "Remakes              : %d\n", r.Remakes)
	fmt.Fprintf(w, "Lost                 : %d\n", r.Lost)
	if r.P95 != nil {
		fmt.Fprintf(w, "P95 Wait             : %.2f s\n", *r.P95)
	} else {
		fmt.Fprintln(w, "P95 Wait             : n/a")
	}
	fmt.Fprintf(w, "Elapsed              : %.2f s\n", r.Elapsed)
	if r.Elapsed > 0 {
		fmt.Fprintf(w, "Throughput           : %.3f drinks/s\n", float64(r.Served)/r.Elapsed)
	}
	if r.Outcome == game.OutcomeCleared {
		fmt.Fprintf(w, "Stars                : %s\n", strings.Repeat("★", r.Stars)+strings.Repeat("☆", 3-r.Stars))
	}
	if r.Attempts > 0 {
		fmt.Fprintf(w, "Attempts             : %d\n", r.Attempts)
	}
	fmt.Fprintf(w, "\n%s\n\n%s\n", r.Title, r.Text)
}

// printTraceSummary writes the aggregate view of a recorded timeline.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "\n=== Trace Summary ===")
	fmt.Fprintf(w, "Events               : %d (serve %d, remake %d, leave %d, combo %d)\n",
		s.TotalEvents, s.Serves, s.Remakes, s.Leaves, s.Combos)
	fmt.Fprintf(w, "Mean Wait            : %.2f s\n", s.MeanWait)
	fmt.Fprintf(w, "Max Wait             : %.2f s\n", s.MaxWait)
	fmt.Fprintf(w, "Peak Queue           : %d\n", s.PeakQueue)
	if s.DominantBottleneck != "" {
		fmt.Fprintf(w, "Dominant Bottleneck  : %s\n", s.DominantBottleneck)
	}
}

// printSweep writes the throughput grid (compute rows, bandwidth columns),
// the dominant bottleneck grid and the knee per bandwidth. Cleared cells are
// marked with '*'.
func printSweep(w io.Writer, l sim.Level, points []game.SweepPoint) {
	var computes []int
	var bws []float64
	cells := make(map[int]map[float64]game.SweepPoint)
	for _, p := range points {
		if !slices.Contains(computes, p.Compute) {
			computes = append(computes, p.Compute)
		}
		if !slices.Contains(bws, p.BW) {
			bws = append(bws, p.BW)
		}
		if cells[p.Compute] == nil {
			cells[p.Compute] = make(map[float64]game.SweepPoint)
		}
		cells[p.Compute][p.BW] = p
	}

	header := func(title string) {
		fmt.Fprintf(w, "\n%s\n%-8s", title, "compute")
		for _, b := range bws {
			fmt.Fprintf(w, " %10s", fmt.Sprintf("bw=%.2f", b))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "=== Roofline Sweep: Level %d (%s) ===\n", l.ID, l.Name)
	header("Throughput (drinks/s)")
	for _, c := range computes {
		fmt.Fprintf(w, "%-8d", c)
		for _, b := range bws {
			p := cells[c][b]
			mark := " "
			if p.Cleared {
				mark = "*"
			}
			fmt.Fprintf(w, " %9.3f%s", p.Throughput, mark)
		}
		fmt.Fprintln(w)
	}

	header("Bottleneck")
	for _, c := range computes {
		fmt.Fprintf(w, "%-8d", c)
		for _, b := range bws {
			fmt.Fprintf(w, " %10s", cells[c][b].Bottleneck)
		}
		fmt.Fprintln(w)
	}

	knees := game.Knees(points)
	fmt.Fprintf(w, "\n%-8s", "knee")
	for _, b := range bws {
		fmt.Fprintf(w, " %10d", knees[b])
	}
	fmt.Fprintln(w)
}

// printLevels writes the level table.
func printLevels(w io.Writer, lv []sim.Level) {
	fmt.Fprintf(w, "%-3s %-18s %5s %6s %6s %8s  %s\n", "ID", "Name", "Goal", "Time", "RPS", "Shared", "Unlocks")
	for _, l := range lv {
		var unlocks []string
		if l.Unlock.Batch {
			unlocks = append(unlocks, "batch")
		}
		if l.Unlock.Quality {
			unlocks = append(unlocks, "quality")
		}
		if len(unlocks) == 0 {
			unlocks = append(unlocks, "-")
		}
		shared := "no"
		if l.BWContention {
			shared = "yes"
		}
		fmt.Fprintf(w, "%-3d %-18s %5d %5.0fs %6.2f %8s  %s\n",
			l.ID, l.Name, l.Goal, l.Duration, l.TrafficRPS, shared, strings.Join(unlocks, ", "))
	}
}
