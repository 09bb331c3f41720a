// Tracks level-wide outcome counters and customer wait statistics.

package sim

import (
	"math"
	"slices"
)

// minP95Samples is the number of wait samples needed before P95 is reported.
const minP95Samples = 4

// Metrics aggregates outcome counters and wait samples for the current level.
// Embedded in State so the HUD and win/lose checks read them directly.
type Metrics struct {
	Arrivals    int // customers generated
	Served      int // customers served successfully
	Remakes     int // drinks remade (customer re-queued)
	Lost        int // customers who abandoned the line
	ServeStreak int // consecutive serves since the last remake or abandonment

	// WaitSamples holds one entry per completed service (served or remade),
	// in completion order. It only grows until Reset.
	WaitSamples []float64

	// P95 is nil until minP95Samples waits exist, then recomputed every tick.
	P95 *float64

	Bottleneck Bottleneck
}

func (m *Metrics) reset() {
	m.Arrivals = 0
	m.Served = 0
	m.Remakes = 0
	m.Lost = 0
	m.ServeStreak = 0
	m.WaitSamples = m.WaitSamples[:0]
	m.P95 = nil
	m.Bottleneck = BottleneckOK
}

// RecordWait appends a completed-service wait sample.
func (m *Metrics) RecordWait(wait float64) {
	m.WaitSamples = append(m.WaitSamples, wait)
}

// refreshP95 recomputes the P95 cache from scratch. Sorting a copy every tick
// is O(n log n); sample counts per level stay in the low hundreds.
func (m *Metrics) refreshP95() {
	if len(m.WaitSamples) < minP95Samples {
		return
	}
	p := Quantile(m.WaitSamples, 0.95)
	m.P95 = &p
}

// P95Value returns the cached P95 and whether it is warm.
func (m *Metrics) P95Value() (float64, bool) {
	if m.P95 == nil {
		return 0, false
	}
	return *m.P95, true
}

// RemakeRate is remakes over all completed services, 0 when nothing completed.
func (m *Metrics) RemakeRate() float64 {
	total := m.Served + m.Remakes
	if total == 0 {
		return 0
	}
	return float64(m.Remakes) / float64(total)
}

// Quantile returns the q-th quantile (q in [0, 1]) of data, linearly
// interpolated between the floor and ceil ranks of the sorted values.
// data is not modified. Returns 0 for empty input.
func Quantile(data []float64, q float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	rank := float64(n-1) * q
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		return sorted[n-1]
	}
	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	t := rank - float64(lowerIdx)
	return sorted[lowerIdx]*(1-t) + sorted[upperIdx]*t
}

// Mean returns the arithmetic mean of data, 0 for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}
