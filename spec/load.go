package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileSpec is the on-disk layout of one grid specification.
type fileSpec struct {
	Type    string     `json:"type" yaml:"type"`
	Colour  string     `json:"colour" yaml:"colour"`
	Grid    [][]string `json:"grid" yaml:"grid"`
	Doubles []string   `json:"doubles" yaml:"doubles"`
}

// LoadFile reads a list of grid specifications from a JSON or YAML file,
// selected by extension, and decodes each into a Specification.
func LoadFile(filename string) ([]*Specification, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification file: %w", err)
	}

	var entries []fileSpec
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse specification file %s: %w", filename, err)
	}

	specs := make([]*Specification, 0, len(entries))
	for i, entry := range entries {
		typ, err := ParseType(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("specification %d (%s): %w", i, entry.Colour, err)
		}
		s, err := New(typ, entry.Colour, entry.Grid, entry.Doubles)
		if err != nil {
			return nil, fmt.Errorf("specification %d (%s): %w", i, entry.Colour, err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}
