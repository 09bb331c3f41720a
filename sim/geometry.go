package sim

import "math"

// Point is a 2-D coordinate in layout units. The terminal renderer maps one
// unit to a fraction of a cell.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rect is an axis-aligned zone.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Geometry is the set of zones supplied by the layout provider.
// The core only reads coordinates from it; it never computes them.
type Geometry struct {
	Queue       Rect
	Counter     Rect
	Bar         Rect
	Pantry      Rect
	Pickup      Rect
	Remake      Rect
	WorldBottom float64
}

// Path is an ordered polyline. Distance 0 is the front of the line (the
// counter); the last point is the tail where new customers appear.
type Path []Point

// PathLengths caches per-segment lengths of a Path and their total.
type PathLengths struct {
	Seg   []float64
	Total float64
}

// MeasurePath computes the segment length table for p.
func MeasurePath(p Path) PathLengths {
	var lens PathLengths
	if len(p) < 2 {
		return lens
	}
	lens.Seg = make([]float64, 0, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		l := p[i].Dist(p[i+1])
		lens.Seg = append(lens.Seg, l)
		lens.Total += l
	}
	return lens
}

// PointOnPath maps a distance along the path to a point by walking segments
// until the remaining distance fits, then interpolating linearly.
// Distances outside [0, total] are clamped. An empty path yields the origin.
func PointOnPath(p Path, lens PathLengths, dist float64) Point {
	if len(p) == 0 {
		return Point{}
	}
	d := clamp(dist, 0, lens.Total)
	for i := 0; i < len(p)-1 && i < len(lens.Seg); i++ {
		a, b := p[i], p[i+1]
		l := lens.Seg[i]
		if d <= l {
			t := 0.0
			if l != 0 {
				t = d / l
			}
			return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		}
		d -= l
	}
	return p[len(p)-1]
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
