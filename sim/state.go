// sim/state.go
package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// State is the mutable simulation model. The stepper owns it exclusively;
// renderers and audio read it but never mutate simulation fields.
type State struct {
	Metrics
	Cosmetics

	LevelIdx int     // index of the current level, drives the archetype mix
	TLeft    float64 // seconds left on the level clock; may go negative
	Now      float64 // simulated seconds since the last Reset

	Queue    CustomerQueue
	Stations []*Station

	// Events is appended to by Step and emptied by DrainEvents.
	Events []Event

	arrivals ArrivalGenerator
	nextID   int64

	arrivalRNG    *rand.Rand
	contentionRNG *rand.Rand
	remakeRNG     *rand.Rand
	cosmeticRNG   *rand.Rand
}

// NewState creates an empty State whose randomness derives from key.
func NewState(key SimulationKey) *State {
	return NewStateWithRNG(NewPartitionedRNG(key))
}

// NewStateWithRNG creates an empty State drawing from the given partitioned
// source. Tests use it to share or pre-advance streams.
func NewStateWithRNG(rng *PartitionedRNG) *State {
	return &State{
		arrivalRNG:    rng.ForSubsystem(SubsystemArrival),
		contentionRNG: rng.ForSubsystem(SubsystemContention),
		remakeRNG:     rng.ForSubsystem(SubsystemRemake),
		cosmeticRNG:   rng.ForSubsystem(SubsystemCosmetic),
	}
}

// CosmeticRNG exposes the cosmetic stream for collaborators that spawn
// visual effects (confetti bursts on level clear).
func (s *State) CosmeticRNG() *rand.Rand {
	return s.cosmeticRNG
}

// Reset reinitializes every counter, empties the line and station batches,
// and rebuilds the stations from cfg.Compute. The line is empty afterwards,
// so lens is only accepted for symmetry with Step.
func (s *State) Reset(l Level, cfg Config, g Geometry, _ PathLengths) {
	s.TLeft = l.Duration
	s.Now = 0
	s.Queue.Clear()
	s.arrivals.reset()
	s.Metrics.reset()
	s.Cosmetics.reset(g)
	s.Events = s.Events[:0]

	n := max(0, cfg.Compute)
	s.Stations = make([]*Station, n)
	for i := range s.Stations {
		s.Stations[i] = newStation()
	}
	logrus.Infof("Reset level %d (%s): %d stations, %.0fs on the clock", l.ID, l.Name, n, l.Duration)
}

// EnsureStations resizes the station array to n, keeping existing stations by
// index so surviving stations never lose in-flight service or stalls.
// Customers held by removed stations go back to the front of the line in
// their pickup order.
func (s *State) EnsureStations(n int) {
	n = max(0, n)
	if len(s.Stations) == n {
		return
	}
	if n < len(s.Stations) {
		var orphans []*Customer
		for _, st := range s.Stations[n:] {
			orphans = append(orphans, st.Batch...)
		}
		clear(s.Stations[n:])
		s.Stations = s.Stations[:n]
		if len(orphans) > 0 {
			for _, c := range orphans {
				c.Dist = 0
			}
			s.Queue.PrependFront(orphans...)
			logrus.Debugf("[t=%07.2f] %d customers returned to the line by station removal", s.Now, len(orphans))
		}
		return
	}
	for len(s.Stations) < n {
		s.Stations = append(s.Stations, newStation())
	}
}

// StationCounts returns how many stations are idle, stalled and busy.
func (s *State) StationCounts() (idle, stalled, busy int) {
	for _, st := range s.Stations {
		switch st.State() {
		case StationStalled:
			stalled++
		case StationBusy:
			busy++
		default:
			idle++
		}
	}
	return idle, stalled, busy
}

// TimeLeft is the level clock clamped at zero for display.
func (s *State) TimeLeft() float64 {
	return max(0, s.TLeft)
}
