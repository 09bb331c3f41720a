package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// QueueSpacing is the distance between neighbouring slots in line.
	QueueSpacing = 46.0
	// WalkSpeed is how fast customers move toward their slot, units/s.
	WalkSpeed = 110.0

	// frontTolerance is how close the head must be to the line front to be served.
	frontTolerance = 10.0
	// slotTolerance is how close the k-th customer must be to its slot before
	// a batch of k is picked up.
	slotTolerance = 6.0
)

// assignSlots gives every queued customer a target distance of index*spacing,
// clamped to the path length. When the head leaves, everyone shifts forward.
func (s *State) assignSlots(lens PathLengths) {
	for i, c := range s.Queue.Items() {
		c.TargetDist = math.Min(lens.Total, float64(i)*QueueSpacing)
	}
}

// walk moves each customer toward its slot at WalkSpeed without overshooting,
// then samples its position on the path.
func (s *State) walk(dt float64, path Path, lens PathLengths) {
	for _, c := range s.Queue.Items() {
		delta := c.Dist - c.TargetDist
		if math.Abs(delta) >= 1 {
			step := math.Min(math.Abs(delta), WalkSpeed*dt)
			if delta > 0 {
				c.Dist -= step
			} else {
				c.Dist += step
			}
		}
		c.Pos = PointOnPath(path, lens, c.Dist)
	}
}

// drainPatience lowers every queued customer's patience and removes those
// who run out, scanning in reverse so removal does not disturb iteration.
func (s *State) drainPatience(dt float64) {
	items := s.Queue.Items()
	for i := len(items) - 1; i >= 0; i-- {
		c := items[i]
		c.Patience -= c.PatienceRate * dt
		if c.Patience > 0 {
			continue
		}
		c.Patience = 0
		s.Queue.RemoveAt(i)
		s.Lost++
		s.ServeStreak = 0
		s.emit(Event{Kind: EventLeave, Time: s.Now, Customer: c.ID, Wait: s.Now - c.Born})
		s.leaveBubble(s.cosmeticRNG, c.Pos)
		logrus.Debugf("[t=%07.2f] leave: customer %d (%s) gave up after %.1fs", s.Now, c.ID, c.Archetype, s.Now-c.Born)
	}
}

// stepQueue runs slot assignment, walking and abandonment for one tick.
func (s *State) stepQueue(dt float64, path Path, lens PathLengths) {
	s.assignSlots(lens)
	s.walk(dt, path, lens)
	s.drainPatience(dt)
}

// frontReady reports whether the head of the line stands at the counter.
func (s *State) frontReady(front Point) bool {
	head := s.Queue.Peek()
	return head != nil && head.Pos.Dist(front) < frontTolerance
}

// slotReady reports whether the customer at index k-1 has reached its slot.
// Only that one customer is checked.
func (s *State) slotReady(k int) bool {
	kth := s.Queue.At(k - 1)
	return kth != nil && math.Abs(kth.Dist-kth.TargetDist) < slotTolerance
}
