package trace

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestSimulationTrace_RecordEvent_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for events
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents}, "Compute")

	// WHEN a serve is recorded
	st.RecordEvent(EventRecord{Time: 3.2, Kind: KindServe, Customer: 1, Wait: 2.1, Feedback: "fast", Streak: 1})

	// THEN the trace holds it unchanged
	if len(st.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(st.Events))
	}
	if st.Events[0].Customer != 1 || st.Events[0].Kind != KindServe {
		t.Errorf("unexpected record %+v", st.Events[0])
	}
}

func TestSimulationTrace_LevelNone_RecordsNothing(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone}, "Compute")

	st.RecordEvent(EventRecord{Kind: KindLeave})
	if st.WantSample(0) {
		t.Error("no samples expected at level none")
	}
	st.RecordSample(SampleRecord{Time: 0})

	if len(st.Events) != 0 || len(st.Samples) != 0 {
		t.Errorf("expected empty trace, got %d events %d samples", len(st.Events), len(st.Samples))
	}
}

func TestSimulationTrace_NilIsSafe(t *testing.T) {
	var st *SimulationTrace
	st.RecordEvent(EventRecord{Kind: KindServe})
	st.RecordSample(SampleRecord{})
	st.Finish(OutcomeRecord{Result: "cleared"})
	if st.Enabled() || st.WantSample(1) {
		t.Error("nil trace must be disabled")
	}
}

func TestSimulationTrace_SamplesFollowInterval(t *testing.T) {
	// GIVEN a sampling trace with a 0.5s interval
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSamples, SampleInterval: 0.5}, "Bandwidth")

	// WHEN the caller samples whenever asked during 2s of 0.1s ticks
	for i := 1; i <= 20; i++ {
		now := float64(i) * 0.1
		if st.WantSample(now) {
			st.RecordSample(SampleRecord{Time: now})
		}
	}

	// THEN roughly one sample per interval is kept
	if len(st.Samples) < 4 || len(st.Samples) > 5 {
		t.Errorf("expected 4-5 samples, got %d", len(st.Samples))
	}
	buckets := map[int]bool{}
	for _, s := range st.Samples {
		b := int(math.Floor(s.Time/0.5 + 1e-9))
		if buckets[b] {
			t.Errorf("two samples in interval %d", b)
		}
		buckets[b] = true
	}
}

func TestNewSimulationTrace_DefaultsInterval(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSamples}, "x")
	if st.Config.SampleInterval != DefaultSampleInterval {
		t.Errorf("expected default interval %v, got %v", DefaultSampleInterval, st.Config.SampleInterval)
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	for _, level := range []string{"", "none", "events", "samples"} {
		if !IsValidTraceLevel(level) {
			t.Errorf("expected %q to be valid", level)
		}
	}
	if IsValidTraceLevel("decisions") {
		t.Error("expected unknown level to be rejected")
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	// GIVEN a trace with events, a sample and an outcome
	p95 := 4.8
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSamples}, "The Bandwidth Wall")
	st.RecordEvent(EventRecord{Time: 1, Kind: KindServe, Customer: 3, Wait: 1.5, Feedback: "fast", Streak: 1})
	st.RecordSample(SampleRecord{Time: 1, QueueLen: 4, Busy: 1, Served: 1, P95: &p95, Bottleneck: "OK"})
	st.Finish(OutcomeRecord{Result: "cleared", Elapsed: 30, Served: 35, Stars: 2})

	// WHEN written and read back
	var buf bytes.Buffer
	if err := WriteYAML(&buf, st); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	if !strings.Contains(buf.String(), "level: The Bandwidth Wall") {
		t.Errorf("expected level name in output:\n%s", buf.String())
	}
	got, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}

	// THEN the timeline survives
	if len(got.Events) != 1 || got.Events[0].Customer != 3 {
		t.Errorf("events lost: %+v", got.Events)
	}
	if len(got.Samples) != 1 || got.Samples[0].P95 == nil || *got.Samples[0].P95 != 4.8 {
		t.Errorf("samples lost: %+v", got.Samples)
	}
	if got.Outcome == nil || got.Outcome.Stars != 2 {
		t.Errorf("outcome lost: %+v", got.Outcome)
	}
}

func TestReadYAML_Malformed(t *testing.T) {
	if _, err := ReadYAML(strings.NewReader("events: [unclosed")); err == nil {
		t.Error("expected decode error")
	}
}
