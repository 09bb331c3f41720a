// batch.go
//
// Service-time model: quality slowdown and the batching trade-off curve.

package sim

import "math"

// BatchEfficiency is the per-unit time factor from grouping customers.
// Each extra customer saves 5.5%, capped at a 25% reduction; batch sizes of
// 0 or 1 get no saving.
func BatchEfficiency(batch int) float64 {
	if batch <= 1 {
		return 1.0
	}
	return 1.0 - math.Min(0.25, 0.055*float64(batch-1))
}

// ServiceTime is the uninterruptible service duration for one pickup.
// Single-customer mode (batch <= 1) costs serviceBase*qSlow; a batch of k
// costs serviceBase*qSlow*batchEff*(0.90+0.08k) for all k customers together.
func ServiceTime(l Level, q Quality, batch int) float64 {
	t := l.ServiceBase * q.SlowFactor()
	if batch <= 1 {
		return t
	}
	return t * BatchEfficiency(batch) * (0.90 + 0.08*float64(batch))
}
