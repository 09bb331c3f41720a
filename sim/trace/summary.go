package trace

// Event kind names as written by the recorder.
const (
	KindServe  = "serve"
	KindRemake = "remake"
	KindLeave  = "leave"
	KindCombo  = "combo"
)

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents int
	Serves      int
	Remakes     int
	Leaves      int
	Combos      int

	MeanWait float64 // over serve and remake events
	MaxWait  float64

	PeakQueue              int
	BottleneckDistribution map[string]int // bottleneck label → sample count
	DominantBottleneck     string
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		BottleneckDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	totalWait, waits := 0.0, 0
	for _, e := range st.Events {
		switch e.Kind {
		case KindServe:
			summary.Serves++
		case KindRemake:
			summary.Remakes++
		case KindLeave:
			summary.Leaves++
			continue
		case KindCombo:
			summary.Combos++
			continue
		}
		totalWait += e.Wait
		waits++
		if e.Wait > summary.MaxWait {
			summary.MaxWait = e.Wait
		}
	}
	if waits > 0 {
		summary.MeanWait = totalWait / float64(waits)
	}

	for _, s := range st.Samples {
		summary.BottleneckDistribution[s.Bottleneck]++
		if s.QueueLen > summary.PeakQueue {
			summary.PeakQueue = s.QueueLen
		}
	}
	best := 0
	for label, n := range summary.BottleneckDistribution {
		// ties break alphabetically so the result is stable
		if n > best || (n == best && label < summary.DominantBottleneck) {
			best = n
			summary.DominantBottleneck = label
		}
	}

	return summary
}
