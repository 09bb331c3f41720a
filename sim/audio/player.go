package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

// Player sends cues to the system speaker. The speaker is opened lazily on
// the first cue; if that fails the player stays silent.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	failed      bool
}

// NewPlayer creates a player at the given master volume (1 is unchanged).
func NewPlayer(rate beep.SampleRate, volume float64) *Player {
	return &Player{
		rate:   rate,
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

func (p *Player) SampleRate() beep.SampleRate { return p.rate }

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initLocked()
}

func (p *Player) initLocked() error {
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(newVolume(p.mixer, p.volume))
	p.initialized = true
	return nil
}

// Play mixes s in immediately; at is ignored since the speaker runs in real
// time.
func (p *Player) Play(_ float64, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failed {
		return
	}
	if err := p.initLocked(); err != nil {
		p.failed = true
		logrus.Warnf("audio disabled: %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
