// Package game drives the simulation the way a player does: levels, levers,
// run/pause, speed, the countdown and win/lose detection. It owns one
// sim.State and is not safe for concurrent use; front ends call it from a
// single loop.
package game

import (
	"fmt"
	"math"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/layout"
	"github.com/sirupsen/logrus"
)

// MaxFrame caps the real time one frame may cover.
const MaxFrame = 0.05

// Speeds are the speed multipliers CycleSpeed walks through.
var Speeds = []int{1, 2, 3}

// countdownFrom is the number of seconds left at which ticks start.
const countdownFrom = 10

type pendingBurst struct {
	in    float64 // seconds until the burst
	at    sim.Point
	count int
}

// Session is one player's game across the level table.
type Session struct {
	State *sim.State
	World layout.World

	levels   []sim.Level
	levelIdx int
	cfg      sim.Config

	running     bool
	speedIdx    int
	lastTickSec int
	attempts    int
	result      *Result

	bursts    []pendingBurst
	listeners []Listener
}

// NewSession creates a session on the first level. levels must be non-empty
// and validated.
func NewSession(levels []sim.Level, cfg sim.Config, world layout.World, key sim.SimulationKey, listeners ...Listener) *Session {
	if len(levels) == 0 {
		panic("game: NewSession with no levels")
	}
	s := &Session{
		State:     sim.NewState(key),
		World:     world,
		levels:    levels,
		cfg:       cfg,
		listeners: listeners,
	}
	s.SetLevel(0)
	return s
}

// AddListener registers another listener.
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Level is the level being played.
func (s *Session) Level() sim.Level { return s.levels[s.levelIdx] }

// LevelIdx is the index of the level being played.
func (s *Session) LevelIdx() int { return s.levelIdx }

// Levels is the level table.
func (s *Session) Levels() []sim.Level { return s.levels }

// Config returns the player levers with locked levers forced to their
// defaults: batching off, medium quality.
func (s *Session) Config() sim.Config { return s.cfg }

// SetConfig changes the levers. Changes take effect on the next frame, so
// stations can be added or removed mid-level.
func (s *Session) SetConfig(cfg sim.Config) {
	s.cfg = applyUnlocks(cfg, s.Level())
}

func applyUnlocks(cfg sim.Config, l sim.Level) sim.Config {
	if !l.Unlock.Batch {
		cfg.Batch = 0
	}
	if !l.Unlock.Quality {
		cfg.Quality = sim.QualityMedium
	}
	return cfg
}

// Running reports whether the simulation clock advances.
func (s *Session) Running() bool { return s.running }

// Speed is the current speed multiplier.
func (s *Session) Speed() int { return Speeds[s.speedIdx] }

// Attempts is the number of time-ups at the current contention level.
func (s *Session) Attempts() int { return s.attempts }

// Result is the outcome of the current attempt, or nil while it is undecided.
func (s *Session) Result() *Result { return s.result }

// Go starts or resumes the clock. It does nothing once the attempt is over.
func (s *Session) Go() {
	if s.result != nil {
		return
	}
	s.running = true
	s.notice("GO!")
}

// Pause stops the clock; cosmetics keep animating.
func (s *Session) Pause() {
	s.running = false
	s.notice("Paused")
}

// CycleSpeed advances to the next speed multiplier and returns it.
func (s *Session) CycleSpeed() int {
	s.speedIdx = (s.speedIdx + 1) % len(Speeds)
	s.notice(fmt.Sprintf("Speed %d×", s.Speed()))
	return s.Speed()
}

// SetSpeed selects one of Speeds directly.
func (s *Session) SetSpeed(mult int) error {
	for i, v := range Speeds {
		if v == mult {
			s.speedIdx = i
			return nil
		}
	}
	return fmt.Errorf("unsupported speed %d, valid: %v", mult, Speeds)
}

// Reset restarts the current level with the current levers.
func (s *Session) Reset() {
	s.restart()
	s.notice("Reset")
}

// SetLevel switches to level i (clamped to the table) and restarts it.
// The bandwidth-wall attempt counter survives only a restart of the same level.
func (s *Session) SetLevel(i int) {
	prev := s.levelIdx
	s.levelIdx = min(max(i, 0), len(s.levels)-1)
	if s.levelIdx != prev {
		s.attempts = 0
	}
	s.cfg = applyUnlocks(s.cfg, s.Level())
	s.restart()
	l := s.Level()
	s.notice(fmt.Sprintf("Level %d: %s", l.ID, l.Name))
}

// Advance moves to the next level and reports whether there was one.
func (s *Session) Advance() bool {
	if s.levelIdx >= len(s.levels)-1 {
		return false
	}
	s.SetLevel(s.levelIdx + 1)
	return true
}

func (s *Session) restart() {
	s.State.Reset(s.Level(), s.cfg, s.World.Geometry, s.World.Lens)
	s.State.LevelIdx = s.levelIdx
	layout.PlaceStations(s.World.Geometry, s.State.Stations)
	s.lastTickSec = 0
	s.result = nil
	s.running = false
	s.bursts = s.bursts[:0]
}

// Resize lays the world out for a new viewport. Customers keep their
// distance along the line; positions are resampled on the next step.
func (s *Session) Resize(w, h float64) {
	s.World = layout.NewWorld(w, h)
	layout.PlaceStations(s.World.Geometry, s.State.Stations)
}

// Frame advances the game by realDt seconds of wall time, clamped to
// MaxFrame. While running, the simulation advances by the clamped time times
// the speed multiplier; cosmetics always advance by the clamped time.
func (s *Session) Frame(realDt float64) {
	s.Tick(math.Min(MaxFrame, math.Max(0, realDt)))
}

// Tick is Frame without the clamp. Headless runs use it to take larger
// fixed steps.
func (s *Session) Tick(raw float64) {
	if s.running {
		s.simulate(raw * float64(s.Speed()))
	}
	s.State.StepCosmetics(raw)
	s.stepBursts(raw)
	s.checkWinLose()
}

func (s *Session) simulate(dt float64) {
	st := s.State
	st.EnsureStations(s.cfg.Compute)
	layout.PlaceStations(s.World.Geometry, st.Stations)
	st.Step(dt, s.Level(), s.cfg, s.World.Geometry, s.World.Path, s.World.Lens)

	for _, ev := range st.DrainEvents() {
		for _, l := range s.listeners {
			l.OnEvent(ev)
		}
	}
	for _, l := range s.listeners {
		if o, ok := l.(StepObserver); ok {
			o.OnStep(st)
		}
	}

	if st.TLeft <= countdownFrom && st.TLeft > 0 {
		sec := int(math.Ceil(st.TLeft))
		if sec != s.lastTickSec {
			s.lastTickSec = sec
			for _, l := range s.listeners {
				l.OnCountdown(sec)
			}
		}
	}
}

func (s *Session) checkWinLose() {
	if !s.running {
		return
	}
	st := s.State
	l := s.Level()

	switch {
	case st.Served >= l.Goal:
		s.finish(OutcomeCleared)
	case st.TLeft <= 0:
		if l.BWContention {
			s.attempts++
		}
		s.finish(OutcomeTimeUp)
	}
}

func (s *Session) finish(o Outcome) {
	s.running = false
	st := s.State
	l := s.Level()

	r := Result{
		Outcome:  o,
		Level:    l,
		Served:   st.Served,
		Remakes:  st.Remakes,
		Lost:     st.Lost,
		Arrivals: st.Arrivals,
		Elapsed:  st.Now,
		Attempts: s.attempts,
	}
	if p, ok := st.P95Value(); ok {
		r.P95 = &p
	}

	if o == OutcomeCleared {
		r.Stars = Stars(st.Metrics, st.TLeft, l.Duration)
		r.Final = s.levelIdx >= len(s.levels)-1
		r.Title, r.Text = clearedText(r)
		s.notice("✨ Level clear!")
		s.celebrate(r.Stars)
		logrus.Infof("Level %d cleared in %.1fs: served %d/%d, %d stars", l.ID, st.Now, st.Served, l.Goal, r.Stars)
	} else {
		r.Title, r.Text = timeUpText(r)
		logrus.Infof("Level %d time up: served %d/%d, lost %d (attempt %d)", l.ID, st.Served, l.Goal, st.Lost, s.attempts)
	}

	s.result = &r
	for _, lis := range s.listeners {
		lis.OnResult(r)
	}
}

// celebrate queues the confetti for a cleared level: one burst over the
// counter, one mid-screen shortly after, and two more for three stars.
func (s *Session) celebrate(stars int) {
	g := s.World.Geometry
	w := s.World.W
	s.State.BurstConfetti(s.State.CosmeticRNG(), sim.Point{X: g.Counter.X + g.Counter.W/2, Y: g.Counter.Y + 30}, 150)
	s.bursts = append(s.bursts, pendingBurst{in: 0.3, at: sim.Point{X: w / 2, Y: 200}, count: 100})
	if stars == 3 {
		s.bursts = append(s.bursts,
			pendingBurst{in: 0.5, at: sim.Point{X: w * 0.3, Y: 150}, count: 80},
			pendingBurst{in: 0.7, at: sim.Point{X: w * 0.7, Y: 150}, count: 80},
		)
	}
}

func (s *Session) stepBursts(dt float64) {
	kept := s.bursts[:0]
	for _, b := range s.bursts {
		b.in -= dt
		if b.in <= 0 {
			s.State.BurstConfetti(s.State.CosmeticRNG(), b.at, b.count)
			continue
		}
		kept = append(kept, b)
	}
	s.bursts = kept
}

func (s *Session) notice(msg string) {
	logrus.Debugf("notice: %s", msg)
	for _, l := range s.listeners {
		l.OnNotice(msg)
	}
}
