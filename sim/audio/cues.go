package audio

import (
	"sync"
	"time"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/game"
	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
)

// Sink receives synthesized cues. at is the cue time in seconds on the
// clock the Cues were built with.
type Sink interface {
	SampleRate() beep.SampleRate
	Play(at float64, s beep.Streamer)
}

// Cues turns session callbacks into sounds. It implements game.Listener and
// game.StepObserver.
type Cues struct {
	mu      sync.Mutex
	sink    Sink
	clock   func() float64
	simNow  float64
	enabled bool
	last    [numSounds]float64
	played  [numSounds]bool
}

// NewCues creates cues that play into sink, rate-limited on the given clock
// (seconds). A nil clock follows the simulated time seen through OnStep,
// which is what a recorded soundtrack wants.
func NewCues(sink Sink, clock func() float64) *Cues {
	return &Cues{sink: sink, clock: clock, enabled: true}
}

// WallClock returns a clock counting real seconds from now.
func WallClock() func() float64 {
	start := time.Now()
	return func() float64 { return time.Since(start).Seconds() }
}

// Toggle flips sound on or off and returns the new setting.
func (c *Cues) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = !c.enabled
	return c.enabled
}

// Enabled reports whether cues are audible.
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Play sounds s unless it is muted or played too recently, and reports
// whether it was sent.
func (c *Cues) Play(s Sound) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || s < 0 || s >= numSounds {
		return false
	}
	now := c.simNow
	if c.clock != nil {
		now = c.clock()
	}
	if c.played[s] && now-c.last[s] < s.MinGap().Seconds() {
		return false
	}
	c.played[s] = true
	c.last[s] = now

	logrus.Tracef("audio: %s at %.2fs", s, now)
	c.sink.Play(now, Synthesize(s, c.sink.SampleRate()))
	return true
}

func (c *Cues) OnEvent(ev sim.Event) {
	switch ev.Kind {
	case sim.EventServe:
		c.Play(SoundServe)
	case sim.EventRemake:
		c.Play(SoundRemake)
	case sim.EventLeave:
		c.Play(SoundLeave)
	case sim.EventCombo:
		c.Play(SoundCombo)
	}
}

func (c *Cues) OnCountdown(int) { c.Play(SoundTick) }

func (c *Cues) OnResult(r game.Result) {
	if r.Outcome == game.OutcomeCleared {
		c.Play(SoundLevelClear)
	}
}

func (c *Cues) OnNotice(string) {}

func (c *Cues) OnStep(s *sim.State) {
	c.mu.Lock()
	c.simNow = s.Now
	c.mu.Unlock()
}
