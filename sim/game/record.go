package game

import (
	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/trace"
)

// Recorder writes a session's timeline into a trace.SimulationTrace.
type Recorder struct {
	NopListener
	Trace *trace.SimulationTrace
}

// NewRecorder creates a recorder for one level attempt.
func NewRecorder(cfg trace.TraceConfig, level sim.Level) *Recorder {
	return &Recorder{Trace: trace.NewSimulationTrace(cfg, level.Name)}
}

func (r *Recorder) OnEvent(ev sim.Event) {
	rec := trace.EventRecord{
		Time:     ev.Time,
		Customer: ev.Customer,
		Wait:     ev.Wait,
		Streak:   ev.Streak,
	}
	switch ev.Kind {
	case sim.EventServe:
		rec.Kind = trace.KindServe
		rec.Feedback = ev.Feedback.String()
	case sim.EventRemake:
		rec.Kind = trace.KindRemake
	case sim.EventLeave:
		rec.Kind = trace.KindLeave
	case sim.EventCombo:
		rec.Kind = trace.KindCombo
	}
	r.Trace.RecordEvent(rec)
}

func (r *Recorder) OnStep(s *sim.State) {
	if !r.Trace.WantSample(s.Now) {
		return
	}
	idle, stalled, busy := s.StationCounts()
	r.Trace.RecordSample(trace.SampleRecord{
		Time:       s.Now,
		QueueLen:   s.Queue.Len(),
		Idle:       idle,
		Stalled:    stalled,
		Busy:       busy,
		Served:     s.Served,
		Remakes:    s.Remakes,
		Lost:       s.Lost,
		P95:        copyP95(s.P95),
		Bottleneck: s.Bottleneck.String(),
	})
}

func (r *Recorder) OnResult(res Result) {
	r.Trace.Finish(trace.OutcomeRecord{
		Result:   res.Outcome.String(),
		Elapsed:  res.Elapsed,
		Served:   res.Served,
		Remakes:  res.Remakes,
		Lost:     res.Lost,
		Arrivals: res.Arrivals,
		Stars:    res.Stars,
	})
}

func copyP95(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
