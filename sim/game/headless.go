package game

import (
	"fmt"
	"math"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/layout"
	"github.com/sirupsen/logrus"
)

// Run plays the current level without a front end: it presses GO and ticks
// the session in fixed steps of dt real seconds until the level is cleared or
// the clock runs out.
func Run(s *Session, dt float64) (Result, error) {
	if dt <= 0 || math.IsNaN(dt) {
		return Result{}, fmt.Errorf("dt must be > 0, got %v", dt)
	}
	l := s.Level()
	maxTicks := int(math.Ceil(l.Duration/(dt*float64(s.Speed())))) + 2

	s.Go()
	for tick := 0; s.Result() == nil; tick++ {
		if tick > maxTicks {
			return Result{}, fmt.Errorf("level %d did not finish within %d ticks", l.ID, maxTicks)
		}
		s.Tick(dt)
	}
	return *s.Result(), nil
}

// SweepPoint is one cell of a roofline sweep.
type SweepPoint struct {
	Compute    int
	BW         float64
	Served     int
	Remakes    int
	Lost       int
	Throughput float64  // served per simulated second over the whole clock
	P95        *float64 // nil when fewer than four waits were recorded
	Bottleneck sim.Bottleneck
	Cleared    bool // served reached the goal before the clock ran out
}

// Sweep runs level l for its full duration at every compute × bandwidth
// combination, keeping the other levers from base. Every cell uses the same
// seed so differences come from the levers alone. Bottleneck is the label
// that held for the most ticks.
func Sweep(l sim.Level, levelIdx int, base sim.Config, computes []int, bws []float64, seed int64, dt float64) ([]SweepPoint, error) {
	if dt <= 0 || math.IsNaN(dt) {
		return nil, fmt.Errorf("dt must be > 0, got %v", dt)
	}
	base = applyUnlocks(base, l)
	world := layout.DefaultWorld()
	ticks := int(math.Ceil(l.Duration / dt))

	points := make([]SweepPoint, 0, len(computes)*len(bws))
	for _, bw := range bws {
		for _, compute := range computes {
			cfg := base
			cfg.Compute, cfg.BW = compute, bw
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("sweep cell compute=%d bw=%v: %w", compute, bw, err)
			}

			st := sim.NewState(sim.NewSimulationKey(seed))
			st.Reset(l, cfg, world.Geometry, world.Lens)
			st.LevelIdx = levelIdx
			layout.PlaceStations(world.Geometry, st.Stations)

			labels := make([]int, len(sim.AllBottlenecks))
			clearedAt := -1.0
			for i := 0; i < ticks; i++ {
				st.Step(dt, l, cfg, world.Geometry, world.Path, world.Lens)
				st.DrainEvents()
				labels[st.Bottleneck]++
				if clearedAt < 0 && st.Served >= l.Goal {
					clearedAt = st.Now
				}
			}

			p := SweepPoint{
				Compute:    compute,
				BW:         bw,
				Served:     st.Served,
				Remakes:    st.Remakes,
				Lost:       st.Lost,
				Throughput: float64(st.Served) / st.Now,
				P95:        copyP95(st.P95),
				Bottleneck: dominant(labels),
				Cleared:    clearedAt >= 0,
			}
			logrus.Debugf("sweep compute=%d bw=%.2f: served=%d throughput=%.3f/s bottleneck=%s",
				compute, bw, p.Served, p.Throughput, p.Bottleneck)
			points = append(points, p)
		}
	}
	return points, nil
}

func dominant(counts []int) sim.Bottleneck {
	best := sim.BottleneckOK
	for _, b := range sim.AllBottlenecks {
		if counts[b] > counts[best] {
			best = b
		}
	}
	return best
}

// Knees finds, for every bandwidth in the sweep, the smallest compute whose
// throughput is within 5% of the best compute at that bandwidth: the point
// past which more stations stop paying off.
func Knees(points []SweepPoint) map[float64]int {
	best := map[float64]float64{}
	for _, p := range points {
		best[p.BW] = math.Max(best[p.BW], p.Throughput)
	}
	knees := map[float64]int{}
	for _, p := range points {
		if p.Throughput < 0.95*best[p.BW] {
			continue
		}
		if k, ok := knees[p.BW]; !ok || p.Compute < k {
			knees[p.BW] = p.Compute
		}
	}
	return knees
}
