package sim

import (
	"math"
	"math/rand"
)

// StallBase is the per-station stall rate before contention. A higher
// bandwidth multiplier lowers it linearly, down to 25% of BWStallBase at
// bw >= 1.86 (and up to 125% at bw <= 0.6).
func StallBase(l Level, bw float64) float64 {
	return l.BWStallBase * (1.25 - clamp((bw-0.6)/1.4, 0, 0.9))
}

// ContentionMultiplier scales the stall rate when the level shares one pantry
// across all stations: every station, and every two units of batch size,
// adds proportionally more demand. Without contention it is 1.
func ContentionMultiplier(l Level, compute, batch int) float64 {
	if !l.BWContention {
		return 1
	}
	perStation := math.Max(1, math.Ceil(float64(batch)/2))
	return float64(compute) * perStation
}

// StallRate is the expected stalls per station-second for the current
// levers. batch is the effective batch size (0 while batching is locked).
func StallRate(l Level, cfg Config, batch int) float64 {
	return StallBase(l, cfg.BW) * ContentionMultiplier(l, cfg.Compute, batch)
}

// StallDuration draws a stall length in seconds, uniform in
// [0.65, 1.30] / max(0.7, bw).
func StallDuration(rng *rand.Rand, bw float64) float64 {
	return (0.65 + rng.Float64()*0.65) / math.Max(0.7, bw)
}

// rollStall reports whether a station stalls during a tick of length dt.
func rollStall(rng *rand.Rand, stallRate, dt float64) bool {
	if stallRate <= 0 {
		return false
	}
	return rng.Float64() < stallRate*dt
}
