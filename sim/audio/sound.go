package audio

import "time"

// Sound is one of the game's cues.
type Sound int

const (
	SoundServe Sound = iota
	SoundRemake
	SoundLeave
	SoundTick
	SoundCombo
	SoundLevelClear
	numSounds
)

func (s Sound) String() string {
	switch s {
	case SoundServe:
		return "serve"
	case SoundRemake:
		return "remake"
	case SoundLeave:
		return "leave"
	case SoundTick:
		return "tick"
	case SoundCombo:
		return "combo"
	case SoundLevelClear:
		return "clear"
	default:
		return "unknown"
	}
}

// MinGap is the shortest time between two plays of the same cue. A burst of
// serves in one frame sounds once.
func (s Sound) MinGap() time.Duration {
	switch s {
	case SoundServe:
		return ms(120)
	case SoundRemake:
		return ms(150)
	case SoundLeave, SoundCombo:
		return ms(250)
	case SoundTick:
		return ms(850)
	case SoundLevelClear:
		return ms(500)
	default:
		return ms(80)
	}
}

func (s Sound) tones() []tone {
	switch s {
	case SoundServe:
		// ascending chime
		return []tone{
			{523, ms(70), WaveSine, 0.09, 0},
			{659, ms(70), WaveSine, 0.09, ms(60)},
			{784, ms(100), WaveSine, 0.09, ms(120)},
		}
	case SoundRemake:
		// descending buzz
		return []tone{
			{330, ms(100), WaveSaw, 0.05, 0},
			{262, ms(140), WaveSaw, 0.04, ms(70)},
		}
	case SoundLeave:
		return []tone{
			{370, ms(100), WaveTriangle, 0.07, 0},
			{262, ms(160), WaveTriangle, 0.05, ms(90)},
		}
	case SoundTick:
		return []tone{{880, ms(30), WaveSine, 0.04, 0}}
	case SoundCombo:
		return []tone{
			{784, ms(50), WaveSine, 0.09, 0},
			{988, ms(50), WaveSine, 0.09, ms(50)},
			{1175, ms(80), WaveSine, 0.09, ms(100)},
		}
	case SoundLevelClear:
		fanfare := []float64{523, 659, 784, 1047}
		out := make([]tone, len(fanfare))
		for i, f := range fanfare {
			out[i] = tone{f, ms(200), WaveSine, 0.11, ms(90 * i)}
		}
		return out
	default:
		return nil
	}
}
