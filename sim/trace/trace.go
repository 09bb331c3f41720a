package trace

// TraceLevel controls how much of a run is recorded.
type TraceLevel string

const (
	// TraceLevelNone disables recording.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents records every serve, remake, leave and combo.
	TraceLevelEvents TraceLevel = "events"
	// TraceLevelSamples records events plus periodic state samples.
	TraceLevelSamples TraceLevel = "samples"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:    true,
	TraceLevelEvents:  true,
	TraceLevelSamples: true,
	"":                true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// DefaultSampleInterval is the simulated time between state samples.
const DefaultSampleInterval = 0.5

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level          TraceLevel `yaml:"level"`
	SampleInterval float64    `yaml:"sample_interval"` // seconds between samples; <= 0 uses DefaultSampleInterval
}

// SimulationTrace collects the timeline of one level run.
type SimulationTrace struct {
	Config  TraceConfig    `yaml:"config"`
	Level   string         `yaml:"level"`
	Events  []EventRecord  `yaml:"events"`
	Samples []SampleRecord `yaml:"samples,omitempty"`
	Outcome *OutcomeRecord `yaml:"outcome,omitempty"`

	nextSample float64
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig, level string) *SimulationTrace {
	if config.SampleInterval <= 0 {
		config.SampleInterval = DefaultSampleInterval
	}
	return &SimulationTrace{
		Config:  config,
		Level:   level,
		Events:  make([]EventRecord, 0),
		Samples: make([]SampleRecord, 0),
	}
}

// Enabled reports whether anything is recorded at all.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level != TraceLevelNone && st.Config.Level != ""
}

// RecordEvent appends an event record.
func (st *SimulationTrace) RecordEvent(record EventRecord) {
	if !st.Enabled() {
		return
	}
	st.Events = append(st.Events, record)
}

// WantSample reports whether a state sample is due at simulated time now.
// Samples are only collected at TraceLevelSamples.
func (st *SimulationTrace) WantSample(now float64) bool {
	return st != nil && st.Config.Level == TraceLevelSamples && now >= st.nextSample
}

// RecordSample appends a state sample and schedules the next one.
func (st *SimulationTrace) RecordSample(record SampleRecord) {
	if st == nil || st.Config.Level != TraceLevelSamples {
		return
	}
	st.Samples = append(st.Samples, record)
	for st.nextSample <= record.Time {
		st.nextSample += st.Config.SampleInterval
	}
}

// Finish records how the run ended.
func (st *SimulationTrace) Finish(outcome OutcomeRecord) {
	if st == nil {
		return
	}
	st.Outcome = &outcome
}
