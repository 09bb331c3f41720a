package game

import (
	"fmt"

	"github.com/barista-pipeline/barista/sim"
)

// Outcome is how a level attempt ended.
type Outcome int

const (
	OutcomeCleared Outcome = iota
	OutcomeTimeUp
)

func (o Outcome) String() string {
	if o == OutcomeTimeUp {
		return "timeup"
	}
	return "cleared"
}

// Result summarizes a finished level attempt.
type Result struct {
	Outcome  Outcome
	Level    sim.Level
	Served   int
	Remakes  int
	Lost     int
	Arrivals int
	P95      *float64
	Elapsed  float64 // simulated seconds
	Stars    int     // 1-3 when cleared, 0 otherwise
	Attempts int     // failed attempts at a bandwidth-contention level, this one included
	Final    bool    // the last level was cleared

	Title string
	Text  string
}

// Stars rates a cleared level from 1 to 3.
//
//	2 stars: P95 < 8s, remake rate < 25%, at most 3 customers lost
//	3 stars: P95 < 5s, remake rate < 15%, nobody lost, more than 10% of the clock left
//
// Without a P95 (fewer than four waits) the rating stays at 1.
func Stars(m sim.Metrics, tLeft, duration float64) int {
	p95, ok := m.P95Value()
	if !ok {
		return 1
	}
	remakeRate := m.RemakeRate()
	timePct := 0.0
	if duration > 0 {
		timePct = max(0, tLeft) / duration
	}

	stars := 1
	if p95 < 8 && remakeRate < 0.25 && m.Lost <= 3 {
		stars = 2
	}
	if p95 < 5 && remakeRate < 0.15 && m.Lost == 0 && timePct > 0.10 {
		stars = 3
	}
	return stars
}

func clearedText(r Result) (title, text string) {
	l := r.Level
	if r.Final {
		title = "You beat the game! 🏁"
		text = "Incredible!\n\nWhat you learned:\n" + l.Learn
	} else {
		title = fmt.Sprintf("Level %d cleared!", l.ID)
		text = "Nice work!\n\nWhat you learned:\n" + l.Learn
		if l.UnlockMsg != "" {
			text += "\n\nUnlocked:\n" + l.UnlockMsg
		}
	}
	switch r.Stars {
	case 3:
		text += "\n\nPerfect! Low P95, no lost customers, time to spare!"
	case 2:
		text += "\n\nGreat! Try for 3 stars: low P95, zero lost, faster clear."
	default:
		text += "\n\nCleared! Optimise for better stars: lower P95, fewer remakes."
	}
	return title, text
}

func timeUpText(r Result) (title, text string) {
	served := fmt.Sprintf("You served %d/%d drinks.\n\n", r.Served, r.Level.Goal)
	if !r.Level.BWContention {
		return "⏱ Time's Up!", served + "Tip: adjust the levers before hitting GO!\nMore baristas, faster pantry: find the right balance."
	}
	switch {
	case r.Attempts <= 1:
		return "⏱ Time's Up!", served +
			"Hmm, the pantry couldn't keep up no matter what you tried.\n\n" +
			"Notice: adding more baristas made the pantry even MORE strained…"
	case r.Attempts == 2:
		return "🧱 The Bandwidth Wall", served +
			"Still stuck! Every barista shares the same pantry.\n" +
			"More baristas = more contention = more waiting.\n\n" +
			"This is the Roofline Model in action."
	default:
		return "🚧 Hardware Limit Reached", served +
			"No amount of optimisation can overcome a hardware bottleneck.\n" +
			"Your pantry (memory bandwidth) is the ceiling.\n\n" +
			"In ML: this is why we need faster memory, not just more GPUs."
	}
}
