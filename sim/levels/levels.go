// Package levels holds the level table: the four built-in levels and loading
// of user-supplied YAML level files.
package levels

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/barista-pipeline/barista/sim"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var builtin []byte

// File is the on-disk shape of a level table.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type File struct {
	Levels []sim.Level `yaml:"levels"`
}

// Defaults returns a fresh copy of the built-in level table.
func Defaults() []sim.Level {
	levels, err := Parse(bytes.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("built-in level table is invalid: %v", err))
	}
	return levels
}

// Load reads and validates a level table from a YAML file.
func Load(path string) ([]sim.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	levels, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}
	return levels, nil
}

// Parse decodes a level table with strict field checking and validates every
// level. Unknown keys are errors so typos cannot silently fall back to zero.
func Parse(r io.Reader) ([]sim.Level, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing level table: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("level table has no levels")
	}
	seen := make(map[int]bool, len(f.Levels))
	for _, l := range f.Levels {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("duplicate level id %d", l.ID)
		}
		seen[l.ID] = true
	}
	return f.Levels, nil
}

// Index returns the position of the level with the given id.
func Index(levels []sim.Level, id int) (int, error) {
	for i, l := range levels {
		if l.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown level id %d", id)
}
