// Package spec decodes the textual arrow-grid notation into placed arrows.
//
// Each grid cell holds a string of colon-joined direction-key pairs, with a
// lone key acting as shorthand for "anchored at and pointing in the same
// direction": "w" means "w:w", "w:d" means an arrow anchored North that
// points East.
package spec

import (
	"errors"
	"fmt"

	"arrowgrid/core"
)

// ErrMalformed is returned when a cell string cannot be split into
// <key>:<key> groups, or when a bent-grid token cannot form a bend.
var ErrMalformed = errors.New("malformed arrow specification")

// Type selects how a grid's arrows are rendered.
type Type string

const (
	// TypeSmall renders free-standing arrow shapes only.
	TypeSmall Type = "small"
	// TypeBent renders an arrow tip plus a right-angled connecting line.
	TypeBent Type = "bent"
)

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "small":
		return TypeSmall, nil
	case "bent":
		return TypeBent, nil
	default:
		return "", fmt.Errorf("unknown specification type: %q", s)
	}
}

// Specification is one grid's worth of decoded arrows for a single
// colour/type group. Constructed once by New, immutable thereafter.
type Specification struct {
	Type    Type
	Colour  string
	Points  []core.ArrowPoint
	Doubles []core.DoubleArrow
}

// New decodes a grid of cell strings (and an optional doubles grid) into a
// Specification. Cell order is row-major and token order within a cell is
// left to right; this ordering determines draw order and is preserved.
func New(typ Type, colour string, grid [][]string, doubles []string) (*Specification, error) {
	s := &Specification{Type: typ, Colour: colour}

	for row, cells := range grid {
		for col, raw := range cells {
			pairs, err := parseCell(raw)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", col, row, err)
			}
			for _, p := range pairs {
				if typ == TypeBent && p.position == p.direction {
					return nil, fmt.Errorf("cell (%d,%d): token %q: %w: a bend needs two distinct directions",
						col, row, raw, ErrMalformed)
				}
				s.Points = append(s.Points, core.ArrowPoint{
					Cell:      core.Point{X: float64(col), Y: float64(row)},
					Position:  p.position,
					Direction: p.direction,
				})
			}
		}
	}

	s.Doubles = parseDoubles(doubles)
	return s, nil
}

// pair is one decoded <position>:<direction> token.
type pair struct {
	position  core.Direction
	direction core.Direction
}

// ExpandShorthand duplicates any lone key around a colon, so "w" becomes
// "w:w" and "wd:a" becomes "w:wd:a". Already-expanded strings pass through
// unchanged.
func ExpandShorthand(s string) string {
	runes := []rune(s)
	expanded := make([]rune, 0, len(runes)*3)
	for i, r := range runes {
		if r == ':' ||
			(i > 0 && runes[i-1] == ':') ||
			(i+1 < len(runes) && runes[i+1] == ':') {
			expanded = append(expanded, r)
			continue
		}
		expanded = append(expanded, r, ':', r)
	}
	return string(expanded)
}

// parseCell expands one cell string and slices it into 3-character
// <key>:<key> groups. An empty cell decodes to no arrows.
func parseCell(raw string) ([]pair, error) {
	if raw == "" {
		return nil, nil
	}

	expanded := []rune(ExpandShorthand(raw))
	if len(expanded)%3 != 0 {
		return nil, fmt.Errorf("%q: expanded to %d characters, not a multiple of 3: %w",
			raw, len(expanded), ErrMalformed)
	}

	pairs := make([]pair, 0, len(expanded)/3)
	for i := 0; i < len(expanded); i += 3 {
		token := string(expanded[i : i+3])
		if expanded[i+1] != ':' {
			return nil, fmt.Errorf("token %q: expected <key>:<key>: %w", token, ErrMalformed)
		}
		position, err := core.DirectionFromKey(expanded[i])
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		direction, err := core.DirectionFromKey(expanded[i+2])
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		pairs = append(pairs, pair{position, direction})
	}
	return pairs, nil
}

// parseDoubles decodes a doubles grid. The character at column i of line j
// places an outline at (i/4, j/2); anything that is not an orientation key
// is filler.
func parseDoubles(lines []string) []core.DoubleArrow {
	var doubles []core.DoubleArrow
	for row, line := range lines {
		for col, char := range []rune(line) {
			orientation, ok := core.DoubleOrientationFromKey(char)
			if !ok {
				continue
			}
			doubles = append(doubles, core.DoubleArrow{
				Position:    core.Point{X: float64(col) / 4, Y: float64(row) / 2},
				Orientation: orientation,
			})
		}
	}
	return doubles
}
