package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ArrivalGenerator turns a continuous arrival rate into whole customers.
// Arrivals are evenly paced: rate*dt accumulates and every crossing of an
// integer boundary yields one customer, so a long tick can yield several.
type ArrivalGenerator struct {
	acc float64
}

// Advance accumulates rate*dt and returns how many customers arrive.
func (a *ArrivalGenerator) Advance(rate, dt float64) int {
	a.acc += rate * dt
	n := 0
	for a.acc >= 1 {
		a.acc--
		n++
	}
	return n
}

// Pending is the fractional customer accumulated so far, in [0, 1).
func (a *ArrivalGenerator) Pending() float64 {
	return a.acc
}

func (a *ArrivalGenerator) reset() {
	a.acc = 0
}

// ArchetypeChances returns the rusher and chill probabilities for a level
// index. Later levels bring more rushers and fewer chill customers; the
// remainder are regulars.
func ArchetypeChances(levelIdx int) (rusher, chill float64) {
	rusher = math.Min(0.55, 0.05+float64(levelIdx)*0.15)
	chill = math.Max(0.05, 0.20-float64(levelIdx)*0.04)
	return rusher, chill
}

// PickArchetype maps a uniform draw u in [0, 1) to an archetype.
func PickArchetype(u float64, levelIdx int) Archetype {
	rusher, chill := ArchetypeChances(levelIdx)
	switch {
	case u < rusher:
		return ArchetypeRusher
	case u < rusher+chill:
		return ArchetypeChill
	default:
		return ArchetypeRegular
	}
}

// spawnCustomer places one new customer at the tail of the line.
func (s *State) spawnCustomer(rng *rand.Rand, path Path, lens PathLengths) *Customer {
	order := Order(rng.Intn(int(numOrders)))
	archetype := PickArchetype(rng.Float64(), s.LevelIdx)
	s.nextID++
	c := NewCustomer(s.nextID, order, archetype, s.Now, lens.Total, PointOnPath(path, lens, lens.Total))
	s.Queue.Enqueue(c)
	s.Arrivals++
	logrus.Debugf("[t=%07.2f] arrival: customer %d (%s, %s)", s.Now, c.ID, archetype, order)
	return c
}

func (s *State) stepArrivals(dt float64, l Level, path Path, lens PathLengths) {
	n := s.arrivals.Advance(l.TrafficRPS, dt)
	for i := 0; i < n; i++ {
		s.spawnCustomer(s.arrivalRNG, path, lens)
	}
}
