// Package trace records the timeline of a level run: discrete events, periodic
// state samples and the final outcome.
// This package has no dependencies on sim/ or sim/game/; it stores pure data types.
package trace

// EventRecord captures a single serve, remake, leave or combo.
type EventRecord struct {
	Time     float64 `yaml:"t"`
	Kind     string  `yaml:"kind"`
	Customer int64   `yaml:"customer,omitempty"`
	Wait     float64 `yaml:"wait,omitempty"`
	Feedback string  `yaml:"feedback,omitempty"`
	Streak   int     `yaml:"streak,omitempty"`
}

// SampleRecord is a snapshot of the line and stations.
type SampleRecord struct {
	Time       float64  `yaml:"t"`
	QueueLen   int      `yaml:"queue"`
	Idle       int      `yaml:"idle"`
	Stalled    int      `yaml:"stalled"`
	Busy       int      `yaml:"busy"`
	Served     int      `yaml:"served"`
	Remakes    int      `yaml:"remakes"`
	Lost       int      `yaml:"lost"`
	P95        *float64 `yaml:"p95,omitempty"` // nil until enough waits are recorded
	Bottleneck string   `yaml:"bottleneck"`
}

// OutcomeRecord captures how a run ended.
type OutcomeRecord struct {
	Result   string  `yaml:"result"` // "cleared", "timeup" or "unfinished"
	Elapsed  float64 `yaml:"elapsed"`
	Served   int     `yaml:"served"`
	Remakes  int     `yaml:"remakes"`
	Lost     int     `yaml:"lost"`
	Arrivals int     `yaml:"arrivals"`
	Stars    int     `yaml:"stars,omitempty"`
}
