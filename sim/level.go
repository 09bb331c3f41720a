package sim

import "fmt"

// Unlock flags which player levers a level exposes.
type Unlock struct {
	Batch   bool `yaml:"batch"`
	Quality bool `yaml:"quality"`
}

// Level is the immutable tuning for one stage of the game.
// Loaded from YAML by the levels package; the stepper only reads it.
type Level struct {
	ID           int        `yaml:"id"`
	Name         string     `yaml:"name"`
	Goal         int        `yaml:"goal"`          // customers to serve to clear the level
	Duration     float64    `yaml:"duration"`      // seconds on the clock
	TrafficRPS   float64    `yaml:"traffic_rps"`   // customer arrivals per second
	ServiceBase  float64    `yaml:"service_base"`  // nominal seconds to make one drink
	BWStallBase  float64    `yaml:"bw_stall_base"` // baseline stalls per station-second
	RemakeByQ    [3]float64 `yaml:"remake_by_q"`   // remake probability per quality tier
	BWContention bool       `yaml:"bw_contention"` // stations and batches share one pantry
	Unlock       Unlock     `yaml:"unlock"`
	Learn        string     `yaml:"learn,omitempty"`
	UnlockMsg    string     `yaml:"unlock_msg,omitempty"`
}

// Validate checks that the level can drive a simulation.
func (l Level) Validate() error {
	if l.Goal <= 0 {
		return fmt.Errorf("level %d (%s): goal must be > 0, got %d", l.ID, l.Name, l.Goal)
	}
	if l.Duration <= 0 {
		return fmt.Errorf("level %d (%s): duration must be > 0, got %v", l.ID, l.Name, l.Duration)
	}
	if l.TrafficRPS < 0 {
		return fmt.Errorf("level %d (%s): traffic_rps must be >= 0, got %v", l.ID, l.Name, l.TrafficRPS)
	}
	if l.ServiceBase <= 0 {
		return fmt.Errorf("level %d (%s): service_base must be > 0, got %v", l.ID, l.Name, l.ServiceBase)
	}
	if l.BWStallBase < 0 {
		return fmt.Errorf("level %d (%s): bw_stall_base must be >= 0, got %v", l.ID, l.Name, l.BWStallBase)
	}
	for q, p := range l.RemakeByQ {
		if p < 0 || p > 1 {
			return fmt.Errorf("level %d (%s): remake_by_q[%d] must be in [0, 1], got %v", l.ID, l.Name, q, p)
		}
	}
	return nil
}
