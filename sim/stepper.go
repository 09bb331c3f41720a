package sim

import "github.com/sirupsen/logrus"

// Step advances the simulation by dt simulated seconds, mutating s in place
// and appending to s.Events. Order within a tick:
//
//  1. resize stations to cfg.Compute
//  2. arrivals
//  3. queue slots, walking, abandonment
//  4. contention rolls and station scheduling
//  5. cosmetic runner and flyers
//  6. P95 cache and bottleneck label
//  7. level clock
//
// Step never blocks and never returns an error; degenerate configurations
// (no stations, empty path) simply produce a line that never moves.
func (s *State) Step(dt float64, l Level, cfg Config, g Geometry, path Path, lens PathLengths) {
	s.EnsureStations(cfg.Compute)
	s.Now += dt

	s.stepArrivals(dt, l, path, lens)
	s.stepQueue(dt, path, lens)
	s.scheduleStations(dt, l, cfg, g, path, lens)

	s.stepRunner(dt, cfg.BW, g)
	s.stepFlyers(dt)

	s.refreshP95()
	s.Bottleneck = ClassifyBottleneck(s.bottleneckInputs(l, cfg))

	s.TLeft -= dt
	logrus.Tracef("[t=%07.2f] queue=%d served=%d remakes=%d lost=%d bottleneck=%s",
		s.Now, s.Queue.Len(), s.Served, s.Remakes, s.Lost, s.Bottleneck)
}
