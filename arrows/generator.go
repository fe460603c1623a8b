// Package arrows turns decoded arrow placements into absolute waypoint
// polylines ready for a path writer.
package arrows

import (
	"fmt"

	"arrowgrid/core"
	"arrowgrid/geometry"
	"arrowgrid/spec"
)

// ArrowThickness is the stroke width used for arrow shapes.
const ArrowThickness = 0.0265625

// LineThickness is the stroke width for connecting lines, always exactly
// 0.05 wider than the arrow stroke.
const LineThickness = ArrowThickness + 0.05

// roundPlaces is the output precision contract for arrow-shape coordinates.
const roundPlaces = 3

// Generator maps arrow placements to waypoint lists using a geometry table.
type Generator struct {
	table *geometry.Table
}

// NewGenerator creates a generator backed by the given geometry table.
func NewGenerator(table *geometry.Table) *Generator {
	return &Generator{table: table}
}

// Arrow builds the waypoint outline for one arrow. Outlines are authored
// once per direction, pointing away from the cell centre; anchoring the
// same outline at a different position is a pure translation by the
// displacement between the two anchors. The result is cell-offset and
// rounded to the output precision.
func (g *Generator) Arrow(p core.ArrowPoint) ([]core.Point, error) {
	waypoints, err := g.table.Waypoints(p.Direction)
	if err != nil {
		return nil, err
	}

	var offset core.Point
	if p.Position != p.Direction {
		positionAnchor, err := g.table.Positions(p.Position)
		if err != nil {
			return nil, err
		}
		directionAnchor, err := g.table.Positions(p.Direction)
		if err != nil {
			return nil, err
		}
		offset = positionAnchor.Sub(directionAnchor)
	}

	outline := make([]core.Point, len(waypoints))
	for i, waypoint := range waypoints {
		outline[i] = waypoint.Add(offset).Add(p.Cell).Round(roundPlaces)
	}
	return outline, nil
}

// BendDirection reflects direction through position on the compass ring.
// It identifies where the straight body of a bent connecting line must run
// toward from the side of the cell. Reflecting the result through position
// again yields the original direction.
func BendDirection(position, direction core.Direction) core.Direction {
	n := core.DirectionCount
	return core.Direction(((2*int(position)-int(direction))%n + n) % n)
}

// Line builds the 3-point connecting line of a bent arrow: from the cell
// edge, a right angle at the bend anchor, ending at the tip anchor. The
// edge point is pulled inward along the line by half the stroke width so
// the rendered cap does not protrude past the cell edge.
//
// Connecting-line points are deliberately left unrounded; only arrow
// shapes carry the 3-decimal output contract.
func (g *Generator) Line(p core.ArrowPoint) ([]core.Point, error) {
	bend := BendDirection(p.Position, p.Direction)

	bendPoint, err := g.table.Positions(bend)
	if err != nil {
		return nil, err
	}
	sidePoint, err := g.table.SidePositions(bend)
	if err != nil {
		return nil, err
	}
	tipPoint, err := g.table.Positions(p.Position)
	if err != nil {
		return nil, err
	}

	body, err := sidePoint.Sub(bendPoint).Normalise()
	if err != nil {
		return nil, fmt.Errorf("zero-length line body at bend %s: %w", bend, err)
	}
	adjustedSidePoint := sidePoint.Sub(body.Scale(LineThickness / 2))

	return []core.Point{
		adjustedSidePoint.Add(p.Cell),
		bendPoint.Add(p.Cell),
		tipPoint.Add(p.Cell),
	}, nil
}

// Double builds the outline for one double arrow at its grid position,
// rounded like any other arrow shape.
func (g *Generator) Double(d core.DoubleArrow) ([]core.Point, error) {
	waypoints, err := g.table.DoubleWaypoints(d.Orientation)
	if err != nil {
		return nil, err
	}
	outline := make([]core.Point, len(waypoints))
	for i, waypoint := range waypoints {
		outline[i] = waypoint.Add(d.Position).Round(roundPlaces)
	}
	return outline, nil
}

// PathSet is the generated geometry for one colour/type group: arrow-shape
// outlines, and for bent groups the connecting lines as well.
type PathSet struct {
	Colour string
	Arrows [][]core.Point
	Lines  [][]core.Point
}

// HasLines reports whether the group produced any connecting lines.
func (s *PathSet) HasLines() bool {
	return len(s.Lines) > 0
}

// Build generates the full path set for one specification, preserving the
// decoded arrow order.
func (g *Generator) Build(s *spec.Specification) (*PathSet, error) {
	set := &PathSet{Colour: s.Colour}

	for i, p := range s.Points {
		if s.Type == spec.TypeBent {
			line, err := g.Line(p)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", s.Colour, i, err)
			}
			set.Lines = append(set.Lines, line)
		}
		arrow, err := g.Arrow(p)
		if err != nil {
			return nil, fmt.Errorf("%s: arrow %d: %w", s.Colour, i, err)
		}
		set.Arrows = append(set.Arrows, arrow)
	}

	for i, d := range s.Doubles {
		outline, err := g.Double(d)
		if err != nil {
			return nil, fmt.Errorf("%s: double arrow %d: %w", s.Colour, i, err)
		}
		set.Arrows = append(set.Arrows, outline)
	}

	return set, nil
}
