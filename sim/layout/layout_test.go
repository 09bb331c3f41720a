package layout

import (
	"testing"

	"github.com/barista-pipeline/barista/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlaps(a, b sim.Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestCompute_DefaultViewport(t *testing.T) {
	g := Compute(1280, 800)

	assert.Equal(t, 24.0, g.Queue.X)
	assert.Equal(t, 110.0, g.Queue.Y)
	assert.InDelta(t, 563.2, g.Queue.W, 1e-9)
	assert.Equal(t, 484.0, g.Queue.H)
	assert.InDelta(t, 601.2, g.Counter.X, 1e-9)
	assert.Equal(t, 230.0, g.Bar.Y)
	assert.Equal(t, 280.0, g.Bar.H)
	assert.InDelta(t, g.Bar.X+g.Bar.W+14, g.Pantry.X, 1e-9)
	assert.Equal(t, sim.Rect{X: 24, Y: 606, W: 250, H: 150}, g.Remake)
	assert.Equal(t, sim.Rect{X: 1006, Y: 606, W: 250, H: 150}, g.Pickup)
	assert.Equal(t, 800.0, g.WorldBottom)
}

func TestCompute_ZonesDoNotOverlap(t *testing.T) {
	for _, size := range [][2]float64{{1280, 800}, {1920, 1080}, {1024, 768}} {
		g := Compute(size[0], size[1])
		zones := map[string]sim.Rect{
			"queue": g.Queue, "bar": g.Bar, "pantry": g.Pantry,
			"pickup": g.Pickup, "remake": g.Remake,
		}
		for an, a := range zones {
			for bn, b := range zones {
				if an < bn {
					assert.False(t, overlaps(a, b), "%v: %s overlaps %s", size, an, bn)
				}
			}
		}
		assert.False(t, overlaps(g.Counter, g.Bar), "%v: counter overlaps bar", size)
	}
}

func TestCompute_NarrowFooterZones(t *testing.T) {
	g := Compute(400, 800)
	assert.Equal(t, (400-24*3)/2.0, g.Remake.W)
	assert.Equal(t, g.Remake.W, g.Pickup.W)
}

func TestLinePath_Serpentine(t *testing.T) {
	g := Compute(1280, 800)
	p := LinePath(g)
	require.Len(t, p, 8)

	xL, xR := g.Queue.X+24, g.Queue.X+g.Queue.W-24
	yTop, yBot := g.Queue.Y+58, g.Queue.Y+g.Queue.H-18

	assert.Equal(t, sim.Point{X: xR, Y: yTop}, p[0], "front of the line")
	assert.Equal(t, sim.Point{X: xR, Y: yBot}, p[7], "tail of the line")
	for i := 0; i < 8; i += 2 {
		assert.Equal(t, p[i].Y, p[i+1].Y, "row %d is horizontal", i/2)
	}
	for i := 1; i < 7; i += 2 {
		assert.Equal(t, p[i].X, p[i+1].X, "turn %d is vertical", i/2)
	}
	assert.InDelta(t, yBot-yTop, p[7].Y-p[0].Y, 1e-9)

	lens := sim.MeasurePath(p)
	rowW := xR - xL
	assert.InDelta(t, 4*rowW+(yBot-yTop), lens.Total, 1e-9)
}

func TestStationPos_ThreePerRow(t *testing.T) {
	g := Compute(1280, 800)
	spacing := (g.Bar.W - 24) / 3

	p0 := StationPos(g, 0, 5)
	p2 := StationPos(g, 2, 5)
	p3 := StationPos(g, 3, 5)

	assert.Equal(t, sim.Point{X: g.Bar.X + 14, Y: g.Bar.Y + 58}, p0)
	assert.InDelta(t, p0.X+2*spacing, p2.X, 1e-9)
	assert.Equal(t, p0.X, p3.X)
	assert.Equal(t, p0.Y+92, p3.Y)
}

func TestStationPos_SingleStationUsesFullWidth(t *testing.T) {
	g := Compute(1280, 800)
	assert.Equal(t, StationPos(g, 0, 1), StationPos(g, 0, 3))
	assert.NotPanics(t, func() { StationPos(g, 0, 0) })
}

func TestPlaceStations(t *testing.T) {
	w := DefaultWorld()
	stations := []*sim.Station{{}, {}}
	PlaceStations(w.Geometry, stations)

	assert.Equal(t, StationPos(w.Geometry, 1, 2), stations[1].Pos)
	assert.Positive(t, w.Lens.Total)
	assert.Len(t, w.Lens.Seg, 7)
}
