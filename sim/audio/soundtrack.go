package audio

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

type placedCue struct {
	at float64
	s  beep.Streamer
}

// Soundtrack collects cues on a timeline for offline rendering.
type Soundtrack struct {
	rate beep.SampleRate
	cues []placedCue
}

// NewSoundtrack creates an empty soundtrack.
func NewSoundtrack(rate beep.SampleRate) *Soundtrack {
	return &Soundtrack{rate: rate}
}

func (t *Soundtrack) SampleRate() beep.SampleRate { return t.rate }

// Play places s at at seconds.
func (t *Soundtrack) Play(at float64, s beep.Streamer) {
	t.cues = append(t.cues, placedCue{at: math.Max(0, at), s: s})
}

// Len is the number of placed cues.
func (t *Soundtrack) Len() int { return len(t.cues) }

// Mixdown renders the timeline into stereo samples covering at least
// length seconds, clipped to [-1, 1]. Cues are consumed.
func (t *Soundtrack) Mixdown(length float64) [][2]float64 {
	sort.SliceStable(t.cues, func(i, j int) bool { return t.cues[i].at < t.cues[j].at })

	out := make([][2]float64, t.rate.N(time.Duration(length*float64(time.Second))))
	chunk := make([][2]float64, 512)
	for _, c := range t.cues {
		pos := t.rate.N(time.Duration(c.at * float64(time.Second)))
		for {
			n, ok := c.s.Stream(chunk)
			for i := 0; i < n; i++ {
				for pos+i >= len(out) {
					out = append(out, [2]float64{})
				}
				out[pos+i][0] += chunk[i][0]
				out[pos+i][1] += chunk[i][1]
			}
			pos += n
			if !ok {
				break
			}
		}
	}
	t.cues = nil

	for i := range out {
		out[i][0] = math.Max(-1, math.Min(1, out[i][0]))
		out[i][1] = math.Max(-1, math.Min(1, out[i][1]))
	}
	return out
}

// WriteWAV mixes the soundtrack down and encodes it as 16-bit stereo WAV.
func (t *Soundtrack) WriteWAV(w io.WriteSeeker, length float64) error {
	samples := t.Mixdown(length)
	format := beep.Format{SampleRate: t.rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, &sampleStreamer{samples: samples}, format); err != nil {
		return fmt.Errorf("encoding soundtrack: %w", err)
	}
	return nil
}

// sampleStreamer streams a fixed slice of samples.
type sampleStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n = copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }
