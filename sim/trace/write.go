package trace

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes the trace as a YAML document.
func WriteYAML(w io.Writer, st *SimulationTrace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing trace: %w", err)
	}
	return nil
}

// ReadYAML decodes a trace previously written by WriteYAML.
func ReadYAML(r io.Reader) (*SimulationTrace, error) {
	var st SimulationTrace
	if err := yaml.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("decoding trace: %w", err)
	}
	return &st, nil
}
