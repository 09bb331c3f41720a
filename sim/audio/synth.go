// Package audio synthesizes the game's sound cues with beep: short tone
// sequences, no sample assets. Cues are rate-limited per sound and can be
// sent to the speaker or laid onto a soundtrack and written as WAV.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultSampleRate is used by the speaker and soundtrack export.
const DefaultSampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an exponential gain ramp from vol down to 0.001 over the
// length of the wrapped stream.
type decay struct {
	streamer beep.Streamer
	vol      float64
	position int
	total    int
}

// floorGain is the gain a tone decays to by its end.
const floorGain = 0.001

// NewDecay shapes s, which must last duration, with an exponential ramp.
func NewDecay(s beep.Streamer, duration time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, vol: vol, total: max(1, rate.N(duration))}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	if d.vol <= 0 {
		for i := 0; i < n; i++ {
			samples[i] = [2]float64{}
		}
		return n, ok
	}
	ratio := floorGain / d.vol
	for i := 0; i < n; i++ {
		gain := d.vol * math.Pow(ratio, float64(d.position)/float64(d.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s by a linear factor.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one note of a cue.
type tone struct {
	freq  float64
	dur   time.Duration
	wave  WaveType
	vol   float64
	delay time.Duration
}

func (t tone) end() time.Duration { return t.delay + t.dur }

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.freq, t.dur, t.wave, rate)
	shaped := NewDecay(osc, t.dur, t.vol, rate)
	if t.delay <= 0 {
		return shaped
	}
	return beep.Seq(beep.Silence(rate.N(t.delay)), shaped)
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Synthesize renders a cue as a finite streamer.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	tones := s.tones()
	if len(tones) == 0 {
		return beep.Silence(0)
	}
	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		streamers = append(streamers, t.streamer(rate))
	}
	return beep.Mix(streamers...)
}

// Duration is how long a cue sounds.
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, t := range s.tones() {
		d = max(d, t.end())
	}
	return d
}
