// Package layout computes the zones of the coffee bar and the serpentine line
// path for a viewport. Zones never overlap: the pickup and remake zones sit in
// a footer fully below the playfield.
package layout

import (
	"math"

	"github.com/barista-pipeline/barista/sim"
)

const (
	// DefaultWidth and DefaultHeight size the virtual world used by headless
	// runs and scaled onto the terminal by the renderer.
	DefaultWidth  = 1280.0
	DefaultHeight = 800.0

	pad     = 24.0
	topY    = 110.0
	footerH = 170.0

	stationCols    = 3
	stationRowStep = 92.0
)

// Compute returns the zones for a w×h viewport.
func Compute(w, h float64) sim.Geometry {
	footerY := h - footerH - pad
	mainBottom := footerY - 12

	queue := sim.Rect{X: pad, Y: topY, W: w * 0.44}
	queue.H = math.Min(math.Max(260, mainBottom-topY), mainBottom-queue.Y)

	counter := sim.Rect{X: queue.X + queue.W + 14, Y: queue.Y, W: w * 0.10, H: 100}

	bar := sim.Rect{X: queue.X + queue.W + 14, Y: queue.Y + 120, W: w * 0.32}
	bar.H = math.Min(280, math.Max(180, mainBottom-bar.Y))

	pantry := sim.Rect{X: bar.X + bar.W + 14, Y: bar.Y, W: 130, H: 110}

	zoneW := math.Min(250, (w-pad*3)/2)
	zoneH := footerH - 20

	return sim.Geometry{
		Queue:       queue,
		Counter:     counter,
		Bar:         bar,
		Pantry:      pantry,
		Remake:      sim.Rect{X: pad, Y: footerY, W: zoneW, H: zoneH},
		Pickup:      sim.Rect{X: w - pad - zoneW, Y: footerY, W: zoneW, H: zoneH},
		WorldBottom: h,
	}
}

// LinePath snakes the line through the queue zone in four rows. The first
// point, top right, is the counter end; the last, bottom right, is the tail.
func LinePath(g sim.Geometry) sim.Path {
	q := g.Queue
	xL := q.X + 24
	xR := q.X + q.W - 24
	yTop := q.Y + 58
	yBot := q.Y + q.H - 18
	rowH := (yBot - yTop) / 3

	return sim.Path{
		{X: xR, Y: yTop},
		{X: xL, Y: yTop},
		{X: xL, Y: yTop + rowH},
		{X: xR, Y: yTop + rowH},
		{X: xR, Y: yTop + 2*rowH},
		{X: xL, Y: yTop + 2*rowH},
		{X: xL, Y: yBot},
		{X: xR, Y: yBot},
	}
}

// StationPos is the top-left corner of station i of n inside the bar: up to
// three per row, rows stacked downward.
func StationPos(g sim.Geometry, i, n int) sim.Point {
	cols := max(1, min(stationCols, n))
	spacing := (g.Bar.W - 24) / float64(cols)
	col, row := i%cols, i/cols
	return sim.Point{
		X: g.Bar.X + 14 + float64(col)*spacing,
		Y: g.Bar.Y + 58 + float64(row)*stationRowStep,
	}
}

// PlaceStations writes every station's position.
func PlaceStations(g sim.Geometry, stations []*sim.Station) {
	for i, st := range stations {
		st.Pos = StationPos(g, i, len(stations))
	}
}

// World bundles a geometry with its line path and cached lengths, the three
// values every Step call needs.
type World struct {
	Geometry sim.Geometry
	Path     sim.Path
	Lens     sim.PathLengths
	W, H     float64
}

// NewWorld lays out a w×h viewport.
func NewWorld(w, h float64) World {
	g := Compute(w, h)
	path := LinePath(g)
	return World{Geometry: g, Path: path, Lens: sim.MeasurePath(path), W: w, H: h}
}

// DefaultWorld lays out the default virtual viewport.
func DefaultWorld() World {
	return NewWorld(DefaultWidth, DefaultHeight)
}
