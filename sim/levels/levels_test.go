package levels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_FourLevels(t *testing.T) {
	levels := Defaults()
	require.Len(t, levels, 4)

	for i, l := range levels {
		assert.Equal(t, i+1, l.ID)
		assert.NoError(t, l.Validate())
	}

	first := levels[0]
	assert.Equal(t, "Compute", first.Name)
	assert.Equal(t, 12, first.Goal)
	assert.Equal(t, 48.0, first.Duration)
	assert.Equal(t, 0.85, first.TrafficRPS)
	assert.Equal(t, 2.50, first.ServiceBase)
	assert.Equal(t, 0.22, first.BWStallBase)
	assert.Equal(t, [3]float64{0.18, 0.10, 0.04}, first.RemakeByQ)
	assert.False(t, first.Unlock.Batch || first.Unlock.Quality)

	wall := levels[3]
	assert.Equal(t, "The Bandwidth Wall", wall.Name)
	assert.True(t, wall.BWContention)
	assert.True(t, wall.Unlock.Batch)
	assert.True(t, wall.Unlock.Quality)
	assert.Empty(t, wall.UnlockMsg)

	assert.True(t, levels[2].Unlock.Batch)
	assert.False(t, levels[2].Unlock.Quality)
}

func TestDefaults_ReturnsFreshCopy(t *testing.T) {
	a := Defaults()
	a[0].Goal = 999
	assert.Equal(t, 12, Defaults()[0].Goal)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse(strings.NewReader(`
levels:
  - id: 1
    name: x
    goal: 1
    duration: 10
    service_base: 1
    trafic_rps: 2
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trafic_rps")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty table", "levels: []", "no levels"},
		{"bad goal", "levels:\n  - {id: 1, goal: 0, duration: 10, service_base: 1}", "goal"},
		{"bad remake", "levels:\n  - {id: 1, goal: 1, duration: 10, service_base: 1, remake_by_q: [0, 2, 0]}", "remake_by_q[1]"},
		{"duplicate id", "levels:\n  - {id: 1, goal: 1, duration: 10, service_base: 1}\n  - {id: 1, goal: 1, duration: 10, service_base: 1}", "duplicate"},
		{"malformed", "levels: [", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
levels:
  - id: 7
    name: Rush Hour
    goal: 40
    duration: 60
    traffic_rps: 3
    service_base: 2
    bw_stall_base: 0.4
    remake_by_q: [0.2, 0.1, 0.05]
    bw_contention: true
    unlock: {batch: true, quality: true}
`), 0o644))

	levels, err := Load(path)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "Rush Hour", levels[0].Name)
	assert.True(t, levels[0].BWContention)

	idx, err := Index(levels, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading level file")
}

func TestIndex_Unknown(t *testing.T) {
	_, err := Index(Defaults(), 9)
	assert.Error(t, err)
}
