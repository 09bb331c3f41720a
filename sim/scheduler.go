package sim

import "github.com/sirupsen/logrus"

// scheduleStations runs every station's state machine for one tick:
//
//	Idle    -> Stalled  contention roll succeeds
//	Stalled -> (prior)  stall timer runs out
//	Idle    -> Busy     roll fails and the line front (or k-th slot) is ready
//	Busy    -> Idle     service timer runs out; each batch member is resolved
//
// Busy stations roll for stalls too; a stall pauses their service timer.
// Front readiness is sampled once before the pass, so several idle stations
// may pick up in the same tick.
func (s *State) scheduleStations(dt float64, l Level, cfg Config, g Geometry, path Path, lens PathLengths) {
	batch := cfg.EffectiveBatch(l)
	q := cfg.EffectiveQuality(l)
	stallRate := StallRate(l, cfg, batch)

	front := PointOnPath(path, lens, 0)
	ready := s.frontReady(front)

	for i, st := range s.Stations {
		if st.Stall > 0 {
			st.Stall -= dt
			continue
		}

		if rollStall(s.contentionRNG, stallRate, dt) {
			st.Stall = StallDuration(s.contentionRNG, cfg.BW)
			s.dispatchRunner(s.cosmeticRNG, st, g)
			logrus.Debugf("[t=%07.2f] station %d stalled on pantry for %.2fs (rate %.3f/s)", s.Now, i, st.Stall, stallRate)
			continue
		}

		if st.Busy {
			st.Remaining -= dt
			if st.Remaining <= 0 {
				s.completeService(i, st, l, q, g, path, lens)
			}
			continue
		}

		if ready {
			s.pickup(i, st, l, q, batch, front)
		}
	}
}

// pickup moves one customer, or exactly batch customers, from the line into
// an idle station. In batch mode nothing happens until batch customers are
// waiting and the batch-th of them has reached its slot.
func (s *State) pickup(i int, st *Station, l Level, q Quality, batch int, front Point) {
	var picked []*Customer
	if batch <= 1 {
		c := s.Queue.Dequeue()
		if c == nil {
			return
		}
		picked = []*Customer{c}
	} else {
		if s.Queue.Len() < batch || !s.slotReady(batch) {
			return
		}
		picked = s.Queue.DequeueN(batch)
	}

	for _, c := range picked {
		s.token(front, st, c.ID)
	}
	st.Busy = true
	st.Batch = picked
	st.Remaining = ServiceTime(l, q, batch)
	logrus.Debugf("[t=%07.2f] station %d picked up %d customer(s), service %.2fs", s.Now, i, len(picked), st.Remaining)
}

// completeService resolves every customer in the station's batch
// independently, then returns the station to Idle.
func (s *State) completeService(i int, st *Station, l Level, q Quality, g Geometry, path Path, lens PathLengths) {
	remakeP := l.RemakeByQ[q]
	for _, c := range st.Batch {
		wait := s.Now - c.Born
		s.RecordWait(wait)

		bad := s.remakeRNG.Float64() < remakeP
		s.cup(s.cosmeticRNG, st, c.Order, bad, g)

		if bad {
			s.Remakes++
			s.ServeStreak = 0
			s.emit(Event{Kind: EventRemake, Time: s.Now, Customer: c.ID, Wait: wait})
			s.remakeFx(s.cosmeticRNG, st)

			// A returning customer starts over at the back, less patient.
			c.Born = s.Now
			c.Dist = lens.Total
			c.TargetDist = lens.Total
			c.Pos = PointOnPath(path, lens, lens.Total)
			c.Patience = 0.7
			s.Queue.Enqueue(c)
			logrus.Debugf("[t=%07.2f] station %d remake: customer %d back in line", s.Now, i, c.ID)
			continue
		}

		s.Served++
		s.ServeStreak++
		fb := FeedbackFor(wait)
		s.emit(Event{Kind: EventServe, Time: s.Now, Customer: c.ID, Wait: wait, Feedback: fb, Streak: s.ServeStreak})
		s.serveBubble(s.cosmeticRNG, fb, st)
		logrus.Debugf("[t=%07.2f] station %d served customer %d after %.2fs (%s)", s.Now, i, c.ID, wait, fb)

		if s.ServeStreak > 0 && s.ServeStreak%5 == 0 {
			s.emit(Event{Kind: EventCombo, Time: s.Now, Streak: s.ServeStreak})
			s.comboBubble(s.ServeStreak, g)
		}
	}
	st.Busy = false
	st.Batch = nil
	st.Remaining = 0
}
