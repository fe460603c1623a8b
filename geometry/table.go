// Package geometry provides the direction-keyed table of canonical arrow
// shapes loaded from an external resource.
package geometry

import (
	"errors"
	"fmt"

	"arrowgrid/core"
)

// ErrMissingDirection is returned when the geometry resource lacks an entry
// for a required direction. This is a configuration error in the resource,
// never silently defaulted.
var ErrMissingDirection = errors.New("geometry table has no entry for direction")

// Table holds the canonical per-direction shape data for one run. It is
// built once by Load and immutable thereafter.
type Table struct {
	waypoints     map[core.Direction][]core.Point
	positions     map[core.Direction]core.Point
	sidePositions map[core.Direction]core.Point
	doubles       map[core.DoubleOrientation][]core.Point
}

// NewTable builds a table from direction-keyed mappings. Callers that read
// the resource from disk go through Load instead.
func NewTable(
	waypoints map[core.Direction][]core.Point,
	positions map[core.Direction]core.Point,
	sidePositions map[core.Direction]core.Point,
	doubles map[core.DoubleOrientation][]core.Point,
) *Table {
	return &Table{
		waypoints:     waypoints,
		positions:     positions,
		sidePositions: sidePositions,
		doubles:       doubles,
	}
}

// Waypoints returns the outline of an arrow pointing in the given
// direction, relative to the cell centre.
func (t *Table) Waypoints(d core.Direction) ([]core.Point, error) {
	points, ok := t.waypoints[d]
	if !ok {
		return nil, fmt.Errorf("%w: %s (waypoints)", ErrMissingDirection, d)
	}
	return points, nil
}

// Positions returns the anchor point for the given direction within a unit cell.
func (t *Table) Positions(d core.Direction) (core.Point, error) {
	point, ok := t.positions[d]
	if !ok {
		return core.Point{}, fmt.Errorf("%w: %s (positions)", ErrMissingDirection, d)
	}
	return point, nil
}

// SidePositions returns the midpoint of the cell edge for the given
// direction. Used only by the bent-line construction.
func (t *Table) SidePositions(d core.Direction) (core.Point, error) {
	point, ok := t.sidePositions[d]
	if !ok {
		return core.Point{}, fmt.Errorf("%w: %s (side positions)", ErrMissingDirection, d)
	}
	return point, nil
}

// DoubleWaypoints returns the outline for a double arrow of the given orientation.
func (t *Table) DoubleWaypoints(o core.DoubleOrientation) ([]core.Point, error) {
	points, ok := t.doubles[o]
	if !ok {
		return nil, fmt.Errorf("%w: %s (double waypoints)", ErrMissingDirection, o)
	}
	return points, nil
}
