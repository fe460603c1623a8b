// Package core contains the fundamental types used throughout the arrowgrid generator.
package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidKey is returned when a character is not a recognised direction key.
var ErrInvalidKey = errors.New("invalid direction key")

// ErrDegenerateVector is returned when a zero-length vector is normalised.
var ErrDegenerateVector = errors.New("cannot normalise a zero-length vector")

// Point represents a 2D coordinate in cell or grid space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns the point multiplied by a scalar.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalise returns a direction vector with unit length.
func (p Point) Normalise() (Point, error) {
	length := p.Length()
	if length == 0 {
		return Point{}, ErrDegenerateVector
	}
	return Point{p.X / length, p.Y / length}, nil
}

// Round returns the point with both components rounded to the given
// number of decimal places.
func (p Point) Round(places int) Point {
	f := math.Pow(10, float64(places))
	return Point{math.Round(p.X*f) / f, math.Round(p.Y*f) / f}
}

// Direction represents one of the eight compass directions, ordered
// clockwise from North so that ordinals can be used in modular arithmetic.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionCount is the size of the compass ring.
const DirectionCount = 8

// directionKeys maps each direction to its canonical key. The keys mirror
// the qwerty block around 's':
//
//	+-------------+
//	| q   w   e   |
//	| a  (s)  d   |
//	| z   x   c   |
//	+-------------+
var directionKeys = [DirectionCount]rune{'w', 'e', 'd', 'c', 'x', 'z', 'a', 'q'}

// keyDirections is the inverse of directionKeys plus the 's' alias, which
// maps onto the South slot to match WASD movement-key intuition.
var keyDirections = map[rune]Direction{
	'w': North,
	'e': NorthEast,
	'd': East,
	'c': SouthEast,
	'x': South,
	's': South,
	'z': SouthWest,
	'a': West,
	'q': NorthWest,
}

// DirectionFromKey converts a direction key (q|w|e|a|d|z|x|c, or the 's'
// alias for South) to a Direction.
func DirectionFromKey(key rune) (Direction, error) {
	d, ok := keyDirections[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return d, nil
}

// Key returns the canonical key for a direction. The alias never appears
// in output.
func (d Direction) Key() rune {
	return directionKeys[d]
}

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// ArrowPoint places one arrow within the grid: the cell it belongs to, the
// anchor direction at which the tip sits, and the direction the shape
// points. Position == Direction denotes a straight arrow.
type ArrowPoint struct {
	Cell      Point
	Position  Direction
	Direction Direction
}

// DoubleOrientation identifies one of the four double-arrow outlines.
type DoubleOrientation int

const (
	Vertical DoubleOrientation = iota
	PositiveDiagonal
	Horizontal
	NegativeDiagonal
)

// doubleKeys maps each orientation to its grid character.
var doubleKeys = [4]rune{'v', 'p', 'h', 'n'}

// DoubleOrientationFromKey converts a doubles-grid character (v|p|h|n) to
// an orientation. Any other character is filler and reports ok == false.
func DoubleOrientationFromKey(key rune) (DoubleOrientation, bool) {
	for i, k := range doubleKeys {
		if k == key {
			return DoubleOrientation(i), true
		}
	}
	return 0, false
}

// Key returns the grid character for a double-arrow orientation.
func (o DoubleOrientation) Key() rune {
	return doubleKeys[o]
}

// String returns the string representation of a DoubleOrientation.
func (o DoubleOrientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case PositiveDiagonal:
		return "PositiveDiagonal"
	case Horizontal:
		return "Horizontal"
	case NegativeDiagonal:
		return "NegativeDiagonal"
	default:
		return "Unknown"
	}
}

// DoubleArrow places one double-arrow outline at an absolute grid position.
type DoubleArrow struct {
	Position    Point
	Orientation DoubleOrientation
}
