package sim

import "math"

// testPath is a straight 230-unit line running right to left: the counter is
// at x=0 and new customers appear at x=230.
func testPath() (Path, PathLengths) {
	p := Path{{X: 0, Y: 0}, {X: 230, Y: 0}}
	return p, MeasurePath(p)
}

// testLevel mirrors level 1 with stalls and remakes switched off, so the
// stepper is deterministic apart from archetype draws.
func testLevel() Level {
	return Level{
		ID:          1,
		Name:        "Compute",
		Goal:        12,
		Duration:    48,
		TrafficRPS:  0.85,
		ServiceBase: 2.5,
		BWStallBase: 0,
		RemakeByQ:   [3]float64{0, 0, 0},
	}
}

func testGeometry() Geometry {
	return Geometry{
		Pantry: Rect{X: 500, Y: 100, W: 130, H: 110},
		Pickup: Rect{X: 400, Y: 400, W: 250, H: 150},
		Remake: Rect{X: 24, Y: 400, W: 250, H: 150},
	}
}

// newTestState returns a reset state for the given level and config.
func newTestState(seed int64, l Level, cfg Config) (*State, Path, PathLengths) {
	path, lens := testPath()
	s := NewState(NewSimulationKey(seed))
	s.Reset(l, cfg, testGeometry(), lens)
	return s, path, lens
}

// runFor steps s with a fixed dt for the given simulated duration and returns
// every event drained along the way.
func runFor(s *State, seconds, dt float64, l Level, cfg Config, path Path, lens PathLengths) []Event {
	var events []Event
	n := int(math.Round(seconds / dt))
	for i := 0; i < n; i++ {
		s.Step(dt, l, cfg, testGeometry(), path, lens)
		events = append(events, s.DrainEvents()...)
	}
	return events
}

// inService counts customers currently held by stations.
func inService(s *State) int {
	n := 0
	for _, st := range s.Stations {
		n += len(st.Batch)
	}
	return n
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
