package geometry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"arrowgrid/core"
)

// tableFile is the on-disk layout of the geometry resource. Maps are keyed
// by direction key characters so the resource stays hand-editable.
type tableFile struct {
	ArrowPositions     map[string]core.Point   `json:"arrow_positions" yaml:"arrow_positions"`
	ArrowSidePositions map[string]core.Point   `json:"arrow_side_positions" yaml:"arrow_side_positions"`
	ArrowWaypoints     map[string][]core.Point `json:"arrow_waypoints" yaml:"arrow_waypoints"`
	DoubleWaypoints    map[string][]core.Point `json:"double_arrow_waypoints" yaml:"double_arrow_waypoints"`
}

// Load reads a geometry resource file and builds the immutable table.
// JSON and YAML are supported, selected by file extension.
func Load(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry file: %w", err)
	}

	var file tableFile
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse geometry file %s: %w", filename, err)
	}

	return buildTable(&file)
}

func buildTable(file *tableFile) (*Table, error) {
	table := &Table{
		waypoints:     make(map[core.Direction][]core.Point, len(file.ArrowWaypoints)),
		positions:     make(map[core.Direction]core.Point, len(file.ArrowPositions)),
		sidePositions: make(map[core.Direction]core.Point, len(file.ArrowSidePositions)),
		doubles:       make(map[core.DoubleOrientation][]core.Point, len(file.DoubleWaypoints)),
	}

	for key, point := range file.ArrowPositions {
		d, err := directionForKey(key, "arrow_positions")
		if err != nil {
			return nil, err
		}
		table.positions[d] = point
	}
	for key, point := range file.ArrowSidePositions {
		d, err := directionForKey(key, "arrow_side_positions")
		if err != nil {
			return nil, err
		}
		table.sidePositions[d] = point
	}
	for key, points := range file.ArrowWaypoints {
		d, err := directionForKey(key, "arrow_waypoints")
		if err != nil {
			return nil, err
		}
		table.waypoints[d] = points
	}
	for key, points := range file.DoubleWaypoints {
		o, ok := core.DoubleOrientationFromKey(firstRune(key))
		if !ok {
			return nil, fmt.Errorf("double_arrow_waypoints: unknown orientation key %q", key)
		}
		table.doubles[o] = points
	}

	return table, nil
}

func directionForKey(key, section string) (core.Direction, error) {
	d, err := core.DirectionFromKey(firstRune(key))
	if err != nil || len(key) != 1 {
		return 0, fmt.Errorf("%s: bad direction key %q", section, key)
	}
	return d, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
