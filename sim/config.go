package sim

import "fmt"

// Quality is the drink quality tier chosen by the player.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// SlowFactor is the service-time multiplier for the tier: higher quality
// takes longer.
func (q Quality) SlowFactor() float64 {
	switch q {
	case QualityLow:
		return 0.92
	case QualityHigh:
		return 1.18
	default:
		return 1.0
	}
}

// Config groups the player-controlled levers. It is read every tick.
type Config struct {
	Compute int     // number of stations (baristas)
	BW      float64 // pantry bandwidth multiplier
	Batch   int     // batch size, 0 = batching off
	Quality Quality // quality tier
}

// NewConfig creates a Config. Zero-value arguments are kept as-is.
func NewConfig(compute int, bw float64, batch int, quality Quality) Config {
	return Config{
		Compute: compute,
		BW:      bw,
		Batch:   batch,
		Quality: quality,
	}
}

// DefaultConfig is the lever position at game start.
func DefaultConfig() Config {
	return NewConfig(1, 1.0, 0, QualityMedium)
}

// Validate applies the slider ranges: compute >= 1, bw > 0, batch >= 0,
// quality in {0, 1, 2}. The stepper itself never calls it; a compute of 0
// is a reachable (losing) state inside the simulation.
func (c Config) Validate() error {
	if c.Compute < 1 {
		return fmt.Errorf("compute must be >= 1, got %d", c.Compute)
	}
	if c.BW <= 0 {
		return fmt.Errorf("bw must be > 0, got %v", c.BW)
	}
	if c.Batch < 0 {
		return fmt.Errorf("batch must be >= 0, got %d", c.Batch)
	}
	if c.Quality < QualityLow || c.Quality > QualityHigh {
		return fmt.Errorf("quality must be 0, 1 or 2, got %d", c.Quality)
	}
	return nil
}

// EffectiveBatch is the batch size in force for the level: 0 while batching
// is locked.
func (c Config) EffectiveBatch(l Level) int {
	if !l.Unlock.Batch {
		return 0
	}
	return c.Batch
}

// EffectiveQuality is the quality tier in force for the level: Medium while
// quality is locked.
func (c Config) EffectiveQuality(l Level) Quality {
	if !l.Unlock.Quality {
		return QualityMedium
	}
	if c.Quality < QualityLow || c.Quality > QualityHigh {
		return QualityMedium
	}
	return c.Quality
}
