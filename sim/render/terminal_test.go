package render

import (
	"strings"
	"testing"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/audio"
	"github.com/barista-pipeline/barista/sim/game"
	"github.com/barista-pipeline/barista/sim/layout"
	"github.com/barista-pipeline/barista/sim/levels"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTerminal(t *testing.T, cfg sim.Config) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := newScreen(t, 120, 40)
	s := game.NewSession(levels.Defaults(), cfg, layout.DefaultWorld(), sim.NewSimulationKey(42))
	return NewTerminal(screen, s, nil), screen
}

// screenText joins every row of the screen, one line per row.
func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTerminal_DrawsHUD(t *testing.T) {
	term, screen := newTerminal(t, sim.NewConfig(2, 1.0, 0, sim.QualityMedium))

	term.Draw()
	out := screenText(screen)

	assert.Contains(t, out, "Level 1: Compute")
	assert.Contains(t, out, "Bottleneck: OK")
	assert.Contains(t, out, "Served 0/12")
	assert.Contains(t, out, "Baristas 2")
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "LINE")
	assert.Contains(t, out, "PANTRY")
	assert.Contains(t, out, "esc quit")
	assert.NotContains(t, out, "Batch", "batching is locked on level 1")
}

func TestTerminal_StationsAndCustomersAppear(t *testing.T) {
	term, screen := newTerminal(t, sim.NewConfig(1, 1.0, 0, sim.QualityMedium))
	term.HandleEvent(runeKey(' '))
	// long enough for a first customer to arrive
	for i := 0; i < 40; i++ {
		term.Frame(0.05)
	}
	require.Positive(t, term.session.State.Queue.Len())

	term.Draw()
	out := screenText(screen)

	assert.Contains(t, out, "1 ")
	assert.Contains(t, out, "☺")
	assert.Contains(t, out, "RUNNING")
}

func TestTerminal_GoPauseToast(t *testing.T) {
	term, _ := newTerminal(t, sim.DefaultConfig())

	assert.True(t, term.HandleEvent(runeKey(' ')))
	assert.True(t, term.session.Running())
	assert.Equal(t, "GO!", term.Toast())

	term.HandleEvent(runeKey('g'))
	assert.False(t, term.session.Running())
	assert.Equal(t, "Paused", term.Toast())

	// the toast fades on the frame clock
	for i := 0; i < 40; i++ {
		term.Frame(0.05)
	}
	assert.Empty(t, term.Toast())
}

func TestTerminal_QuitKeys(t *testing.T) {
	term, _ := newTerminal(t, sim.DefaultConfig())
	assert.False(t, term.HandleEvent(key(tcell.KeyEscape)))
	assert.False(t, term.HandleEvent(key(tcell.KeyCtrlC)))
	assert.True(t, term.HandleEvent(runeKey('x')))
}

func TestTerminal_LeverKeys(t *testing.T) {
	term, _ := newTerminal(t, sim.DefaultConfig())
	s := term.session

	term.HandleEvent(runeKey('+'))
	term.HandleEvent(runeKey('+'))
	assert.Equal(t, 3, s.Config().Compute)
	term.HandleEvent(runeKey('-'))
	assert.Equal(t, 2, s.Config().Compute)

	term.HandleEvent(runeKey(']'))
	assert.InDelta(t, 1.1, s.Config().BW, 1e-9)

	// locked on level 1
	term.HandleEvent(runeKey('b'))
	term.HandleEvent(runeKey('q'))
	assert.Zero(t, s.Config().Batch)
	assert.Equal(t, sim.QualityMedium, s.Config().Quality)

	term.HandleEvent(runeKey('4'))
	require.Equal(t, 3, s.LevelIdx())
	term.HandleEvent(runeKey('b'))
	term.HandleEvent(runeKey('q'))
	assert.Equal(t, 2, s.Config().Batch)
	assert.Equal(t, sim.QualityHigh, s.Config().Quality)
}

func TestTerminal_LevelKeysClamp(t *testing.T) {
	term, _ := newTerminal(t, sim.DefaultConfig())
	term.HandleEvent(runeKey('9'))
	assert.Equal(t, 3, term.session.LevelIdx())

	term.HandleEvent(runeKey('n'))
	assert.Equal(t, "Last level", term.Toast())
}

func TestTerminal_SpeedAndReset(t *testing.T) {
	term, _ := newTerminal(t, sim.DefaultConfig())
	term.HandleEvent(runeKey('s'))
	assert.Equal(t, 2, term.session.Speed())

	term.HandleEvent(runeKey(' '))
	term.Frame(0.05)
	require.Positive(t, term.session.State.Now)

	term.HandleEvent(runeKey('r'))
	assert.Zero(t, term.session.State.Now)
	assert.False(t, term.session.Running())
}

func TestTerminal_MuteWithoutAudio(t *testing.T) {
	term, _ := newTerminal(t, sim.DefaultConfig())
	term.HandleEvent(runeKey('m'))
	assert.Equal(t, "No audio device", term.Toast())
}

type silentSink struct{}

func (silentSink) SampleRate() beep.SampleRate  { return audio.DefaultSampleRate }
func (silentSink) Play(float64, beep.Streamer) {}

func TestTerminal_MuteTogglesCues(t *testing.T) {
	screen := newScreen(t, 120, 40)
	s := game.NewSession(levels.Defaults(), sim.DefaultConfig(), layout.DefaultWorld(), sim.NewSimulationKey(1))
	cues := audio.NewCues(silentSink{}, nil)
	term := NewTerminal(screen, s, cues)

	term.HandleEvent(runeKey('m'))
	assert.False(t, cues.Enabled())
	assert.Equal(t, "🔇 Sound off", term.Toast())

	term.Draw()
	assert.Contains(t, screenText(screen), "Sound off")
}

func TestTerminal_ResultPanelAndEnter(t *testing.T) {
	term, screen := newTerminal(t, sim.NewConfig(3, 1.5, 0, sim.QualityMedium))

	r, err := game.Run(term.session, 0.05)
	require.NoError(t, err)
	require.Equal(t, game.OutcomeCleared, r.Outcome)

	term.Draw()
	out := screenText(screen)
	assert.Contains(t, out, "Level 1 cleared!")
	assert.Contains(t, out, "[enter] next level")

	term.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 1, term.session.LevelIdx())
	assert.Nil(t, term.session.Result())
}

func TestTerminal_EnterRetriesAfterTimeUp(t *testing.T) {
	term, screen := newTerminal(t, sim.NewConfig(1, 1.0, 0, sim.QualityMedium))
	term.session.SetConfig(sim.NewConfig(0, 1.0, 0, sim.QualityMedium))

	r, err := game.Run(term.session, 0.1)
	require.NoError(t, err)
	require.Equal(t, game.OutcomeTimeUp, r.Outcome)

	term.Draw()
	assert.Contains(t, screenText(screen), "[enter] try again")

	term.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 0, term.session.LevelIdx())
	assert.Nil(t, term.session.Result())
}

func TestTerminal_ResizeFollowsScreen(t *testing.T) {
	term, screen := newTerminal(t, sim.DefaultConfig())
	screen.SetSize(60, 20)
	term.HandleEvent(tcell.NewEventResize(60, 20))

	assert.Equal(t, 60, term.width)
	assert.Equal(t, 20, term.height)
	assert.NotPanics(t, term.Draw)
}

func TestTerminal_TinyScreenDoesNotPanic(t *testing.T) {
	term, screen := newTerminal(t, sim.DefaultConfig())
	screen.SetSize(3, 2)
	term.Resize()
	assert.NotPanics(t, term.Draw)
}
