// Package export writes generated path sets as JSON files laid out for the
// drawing tool: one directory per colour, one file per shape group.
package export

import (
	"encoding/json"
	"fmt"
	"regexp"

	"arrowgrid/core"
)

// Style carries the stroke settings the drawing tool applies to a group.
type Style struct {
	Thickness float64 `json:"thickness"`
	Color     string  `json:"color"`
}

// PathFile is the JSON document for one group of shapes.
type PathFile struct {
	Lines [][]core.Point `json:"lines"`
	Style Style          `json:"style"`
}

// pointObject matches an indented {"x": .., "y": ..} object so it can be
// collapsed onto a single line.
var pointObject = regexp.MustCompile(`\{\s+"x": (-?[0-9.]+),\s+"y": (-?[0-9.]+)\s+\}`)

// Marshal renders one shape group as indented JSON with each point object
// collapsed onto one line for legibility.
func Marshal(shapes [][]core.Point, colour string, thickness float64) (string, error) {
	file := PathFile{
		Lines: shapes,
		Style: Style{Thickness: thickness, Color: colour},
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s path file: %w", colour, err)
	}
	return pointObject.ReplaceAllString(string(data), `{ "x": $1, "y": $2 }`), nil
}
