package render

import (
	"context"
	"time"

	"github.com/barista-pipeline/barista/sim/game"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// FrameInterval is the redraw period of the interactive loop (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// HandleEvent applies one terminal event and reports whether the loop should
// keep going.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			t.confirm()
		case tcell.KeyRune:
			t.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		t.Resize()
	}
	return true
}

func (t *Terminal) handleRune(r rune) {
	s := t.session
	switch r {
	case ' ', 'g':
		if s.Running() {
			s.Pause()
		} else {
			s.Go()
		}
	case 's':
		s.CycleSpeed()
	case 'r':
		s.Reset()
	case 'n':
		if !s.Advance() {
			t.OnNotice("Last level")
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.SetLevel(int(r - '1'))
	case '+', '=':
		s.SetConfig(StepCompute(s.Config(), 1))
	case '-', '_':
		s.SetConfig(StepCompute(s.Config(), -1))
	case ']':
		s.SetConfig(StepBW(s.Config(), 1))
	case '[':
		s.SetConfig(StepBW(s.Config(), -1))
	case 'b':
		if s.Level().Unlock.Batch {
			s.SetConfig(CycleBatch(s.Config()))
		}
	case 'q':
		if s.Level().Unlock.Quality {
			s.SetConfig(CycleQuality(s.Config()))
		}
	case 'm':
		if t.cues == nil {
			t.OnNotice("No audio device")
			return
		}
		if t.cues.Toggle() {
			t.OnNotice("🔊 Sound on")
		} else {
			t.OnNotice("🔇 Sound off")
		}
	}
}

// confirm answers the result panel: next level after a clear, another try
// after a time-up.
func (t *Terminal) confirm() {
	s := t.session
	r := s.Result()
	switch {
	case r == nil:
		return
	case r.Outcome == game.OutcomeCleared && !r.Final:
		s.Advance()
	default:
		s.Reset()
	}
}

// Run polls terminal events on a goroutine and redraws on a ticker until the
// player quits or ctx is done. The session is only touched from this loop.
func (t *Terminal) Run(ctx context.Context) {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-eventChan:
			if !ok || !t.HandleEvent(ev) {
				logrus.Debug("play: quit")
				return
			}

		case now := <-ticker.C:
			t.Frame(now.Sub(last).Seconds())
			last = now
			t.Draw()
		}
	}
}
