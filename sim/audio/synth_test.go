package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillator_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := drain(osc)

		if len(samples) != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(50*time.Millisecond), len(samples))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d out of range or not mono: %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("expected no error, got %v", osc.Err())
		}
	}
}

func TestOscillator_TriangleShape(t *testing.T) {
	// 1 Hz at 4 samples per second visits phases 0, .25, .5, .75
	osc := NewOscillator(1, time.Second, WaveTriangle, beep.SampleRate(4))
	samples := drain(osc)
	want := []float64{-1, 0, 1, 0}
	for i, w := range want {
		if math.Abs(samples[i][0]-w) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, w, samples[i][0])
		}
	}
}

func TestDecay_RampsDown(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	samples := drain(NewDecay(osc, 100*time.Millisecond, 0.1, rate))

	if math.Abs(samples[0][0]-0.1) > 1e-12 {
		t.Errorf("expected initial gain 0.1, got %v", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if last > 0.0015 {
		t.Errorf("expected gain near 0.001 at the end, got %v", last)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] > samples[i-1][0] {
			t.Fatalf("gain rose at sample %d", i)
		}
	}
}

func TestSynthesize_Durations(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		sound Sound
		want  time.Duration
	}{
		{SoundServe, 220 * time.Millisecond},
		{SoundRemake, 210 * time.Millisecond},
		{SoundLeave, 250 * time.Millisecond},
		{SoundTick, 30 * time.Millisecond},
		{SoundCombo, 180 * time.Millisecond},
		{SoundLevelClear, 470 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Duration(tt.sound); got != tt.want {
			t.Errorf("%s: expected duration %v, got %v", tt.sound, tt.want, got)
		}
		samples := drain(Synthesize(tt.sound, rate))
		if d := len(samples) - rate.N(tt.want); d < -1 || d > 1 {
			t.Errorf("%s: expected %d samples, got %d", tt.sound, rate.N(tt.want), len(samples))
		}
		peak := 0.0
		for _, s := range samples {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if peak == 0 || peak > 0.5 {
			t.Errorf("%s: unexpected peak %v", tt.sound, peak)
		}
	}
}

func TestSound_MinGapAndNames(t *testing.T) {
	if SoundTick.MinGap() != 850*time.Millisecond {
		t.Errorf("tick gap: got %v", SoundTick.MinGap())
	}
	if SoundServe.MinGap() != 120*time.Millisecond {
		t.Errorf("serve gap: got %v", SoundServe.MinGap())
	}
	seen := map[string]bool{}
	for s := Sound(0); s < numSounds; s++ {
		if seen[s.String()] || s.String() == "unknown" {
			t.Errorf("bad name for sound %d: %q", s, s.String())
		}
		seen[s.String()] = true
	}
}

func TestNewVolume_ZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatalf("expected silence, got %v", s)
		}
	}
}
