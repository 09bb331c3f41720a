package game

import "github.com/barista-pipeline/barista/sim"

// Listener receives everything a front end reacts to: stepper events,
// countdown ticks, level results and short notices ("GO!", "Paused").
// Callbacks run on the goroutine that drives the session.
type Listener interface {
	OnEvent(ev sim.Event)
	OnCountdown(secondsLeft int)
	OnResult(r Result)
	OnNotice(msg string)
}

// StepObserver is implemented by listeners that also want to look at the
// state after every simulated step, such as the trace recorder.
type StepObserver interface {
	OnStep(s *sim.State)
}

// NopListener ignores everything. Embed it to implement only some callbacks.
type NopListener struct{}

func (NopListener) OnEvent(sim.Event) {}
func (NopListener) OnCountdown(int)   {}
func (NopListener) OnResult(Result)   {}
func (NopListener) OnNotice(string)   {}
