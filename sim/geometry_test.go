package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasurePath_SegmentsAndTotal(t *testing.T) {
	p := Path{{0, 0}, {3, 4}, {3, 10}}
	lens := MeasurePath(p)

	assert.Equal(t, []float64{5, 6}, lens.Seg)
	assert.Equal(t, 11.0, lens.Total)
}

func TestMeasurePath_Degenerate(t *testing.T) {
	assert.Equal(t, PathLengths{}, MeasurePath(nil))
	assert.Equal(t, PathLengths{}, MeasurePath(Path{{1, 1}}))
}

func TestPointOnPath(t *testing.T) {
	p := Path{{0, 0}, {10, 0}, {10, 10}}
	lens := MeasurePath(p)

	tests := []struct {
		name string
		dist float64
		want Point
	}{
		{"front", 0, Point{0, 0}},
		{"inside first segment", 4, Point{4, 0}},
		{"corner", 10, Point{10, 0}},
		{"inside second segment", 15, Point{10, 5}},
		{"tail", 20, Point{10, 10}},
		{"clamped below", -7, Point{0, 0}},
		{"clamped above", 99, Point{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnPath(p, lens, tt.dist)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestPointOnPath_ZeroLengthSegment(t *testing.T) {
	p := Path{{0, 0}, {0, 0}, {5, 0}}
	lens := MeasurePath(p)

	assert.Equal(t, Point{0, 0}, PointOnPath(p, lens, 0))
	assert.Equal(t, Point{2, 0}, PointOnPath(p, lens, 2))
}

func TestPointOnPath_EmptyPath(t *testing.T) {
	assert.Equal(t, Point{}, PointOnPath(nil, PathLengths{}, 5))
}
