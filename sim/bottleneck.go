package sim

import "math"

// Bottleneck labels the factor currently limiting throughput.
type Bottleneck int

const (
	BottleneckOK Bottleneck = iota
	BottleneckBandwidth
	BottleneckCompute
	BottleneckBatch
	BottleneckRemakes
	BottleneckTraffic
)

func (b Bottleneck) String() string {
	switch b {
	case BottleneckBandwidth:
		return "Bandwidth"
	case BottleneckCompute:
		return "Compute"
	case BottleneckBatch:
		return "Batch"
	case BottleneckRemakes:
		return "Remakes"
	case BottleneckTraffic:
		return "Traffic"
	default:
		return "OK"
	}
}

// AllBottlenecks lists every label in classifier priority order, OK last.
var AllBottlenecks = []Bottleneck{
	BottleneckBandwidth,
	BottleneckCompute,
	BottleneckBatch,
	BottleneckRemakes,
	BottleneckTraffic,
	BottleneckOK,
}

// BottleneckInputs is the snapshot the classifier decides on.
type BottleneckInputs struct {
	Stations int // station count
	Stalled  int // stations with an active stall
	Busy     int // stations in service and not stalled
	QueueLen int

	BatchUnlocked   bool
	Batch           int // configured batch size, regardless of unlock
	QualityUnlocked bool

	Served  int
	Remakes int
}

// ClassifyBottleneck applies the fixed-priority decision list; the first
// matching rule wins.
func ClassifyBottleneck(in BottleneckInputs) Bottleneck {
	switch {
	case in.Stalled >= max(1, in.Stations/2):
		return BottleneckBandwidth
	case in.Busy == in.Stations && in.QueueLen > 6:
		return BottleneckCompute
	case in.BatchUnlocked && in.Batch >= 3 && in.QueueLen > 10:
		return BottleneckBatch
	case in.QualityUnlocked && float64(in.Remakes) > math.Max(4, float64(in.Served)*0.35):
		return BottleneckRemakes
	case in.QueueLen > 12:
		return BottleneckTraffic
	default:
		return BottleneckOK
	}
}

func (s *State) bottleneckInputs(l Level, cfg Config) BottleneckInputs {
	in := BottleneckInputs{
		Stations:        len(s.Stations),
		QueueLen:        s.Queue.Len(),
		BatchUnlocked:   l.Unlock.Batch,
		Batch:           cfg.Batch,
		QualityUnlocked: l.Unlock.Quality,
		Served:          s.Served,
		Remakes:         s.Remakes,
	}
	for _, st := range s.Stations {
		switch st.State() {
		case StationStalled:
			in.Stalled++
		case StationBusy:
			in.Busy++
		}
	}
	return in
}
