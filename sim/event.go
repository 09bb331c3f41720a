package sim

// EventKind is the closed set of semantic outcomes the stepper reports.
// Consumers (audio, confetti, HUD) switch over it exhaustively.
type EventKind int

const (
	EventServe EventKind = iota
	EventRemake
	EventLeave
	EventCombo
)

func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventRemake:
		return "remake"
	case EventLeave:
		return "leave"
	case EventCombo:
		return "combo"
	default:
		return "unknown"
	}
}

// Feedback buckets how long a served customer waited.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackFast          // wait < 4s
	FeedbackOK            // wait < 10s
	FeedbackSlow
)

func (f Feedback) String() string {
	switch f {
	case FeedbackFast:
		return "fast"
	case FeedbackOK:
		return "ok"
	case FeedbackSlow:
		return "slow"
	default:
		return "none"
	}
}

// FeedbackFor classifies a wait in seconds.
func FeedbackFor(wait float64) Feedback {
	switch {
	case wait < 4:
		return FeedbackFast
	case wait < 10:
		return FeedbackOK
	default:
		return FeedbackSlow
	}
}

// Event is one entry of the per-tick event buffer.
type Event struct {
	Kind     EventKind
	Time     float64  // simulated time the event occurred
	Customer int64    // customer involved (0 for combo)
	Wait     float64  // seconds waited; serve and remake only
	Feedback Feedback // serve only
	Streak   int      // serve streak after the event; serve and combo only
}

func (s *State) emit(ev Event) {
	s.Events = append(s.Events, ev)
}

// DrainEvents returns the buffered events in order and clears the buffer.
// Step never clears the buffer itself; the consumer calls DrainEvents once
// per tick.
func (s *State) DrainEvents() []Event {
	if len(s.Events) == 0 {
		return nil
	}
	out := make([]Event, len(s.Events))
	copy(out, s.Events)
	s.Events = s.Events[:0]
	return out
}
