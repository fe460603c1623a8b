// Package preview renders decoded arrow grids in the terminal so a
// specification can be sanity-checked before the path files are written.
package preview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"arrowgrid/arrows"
	"arrowgrid/core"
	"arrowgrid/spec"
)

// Terminal footprint of one grid cell.
const (
	cellWidth  = 6
	cellHeight = 3
)

// directionGlyphs maps each direction ordinal to an arrow glyph.
var directionGlyphs = [core.DirectionCount]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// doubleGlyphs maps each double-arrow orientation to a glyph.
var doubleGlyphs = [4]rune{'↕', '⤢', '↔', '⤡'}

// Run opens a full-screen preview of the given specifications, all drawn on
// the same grid. Press q, ESC or Ctrl+C to leave.
func Run(specs []*spec.Specification) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	for {
		screen.Clear()
		cols, rows := gridSize(specs)
		drawGrid(screen, cols, rows)
		for _, s := range specs {
			drawSpec(screen, s)
		}
		drawStatus(screen, specs)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

// gridSize derives the drawn grid dimensions from the decoded placements.
func gridSize(specs []*spec.Specification) (cols, rows int) {
	for _, s := range specs {
		for _, p := range s.Points {
			cols = max(cols, int(p.Cell.X)+1)
			rows = max(rows, int(p.Cell.Y)+1)
		}
		for _, d := range s.Doubles {
			cols = max(cols, int(d.Position.X)+1)
			rows = max(rows, int(d.Position.Y)+1)
		}
	}
	return max(cols, 1), max(rows, 1)
}

func drawGrid(screen tcell.Screen, cols, rows int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for row := 0; row <= rows; row++ {
		for col := 0; col <= cols; col++ {
			screen.SetContent(col*cellWidth, row*cellHeight, '+', nil, style)
		}
	}
}

func drawSpec(screen tcell.Screen, s *spec.Specification) {
	style := colourStyle(s.Colour)
	for _, p := range s.Points {
		originX := int(p.Cell.X) * cellWidth
		originY := int(p.Cell.Y) * cellHeight
		dx, dy := anchorOffset(p.Position)
		x := originX + cellWidth/2 + dx*(cellWidth/2-1)
		y := originY + cellHeight/2 + dy*(cellHeight/2)
		screen.SetContent(x, y, directionGlyphs[p.Direction], nil, style)

		if s.Type == spec.TypeBent {
			bx, by := anchorOffset(arrows.BendDirection(p.Position, p.Direction))
			screen.SetContent(
				originX+cellWidth/2+bx*(cellWidth/2-1),
				originY+cellHeight/2+by*(cellHeight/2),
				'·', nil, style)
		}
	}
	for _, d := range s.Doubles {
		x := int(d.Position.X * cellWidth)
		y := int(d.Position.Y * cellHeight)
		screen.SetContent(x, y, doubleGlyphs[d.Orientation], nil, style)
	}
}

func drawStatus(screen tcell.Screen, specs []*spec.Specification) {
	_, height := screen.Size()
	labels := make([]string, len(specs))
	for i, s := range specs {
		labels[i] = fmt.Sprintf("%s/%s (%d arrows)", s.Colour, s.Type, len(s.Points)+len(s.Doubles))
	}
	status := strings.Join(labels, "  ") + "  [q to quit]"
	style := tcell.StyleDefault
	for i, r := range status {
		screen.SetContent(i, height-1, r, nil, style)
	}
}

// anchorOffset maps a direction to its unit offset within the 3x3 layout
// of a cell.
func anchorOffset(d core.Direction) (int, int) {
	switch d {
	case core.North:
		return 0, -1
	case core.NorthEast:
		return 1, -1
	case core.East:
		return 1, 0
	case core.SouthEast:
		return 1, 1
	case core.South:
		return 0, 1
	case core.SouthWest:
		return -1, 1
	case core.West:
		return -1, 0
	case core.NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// colourStyle maps a colour label to a terminal style. Hex labels go
// through go-colorful, anything else through tcell's named colours.
func colourStyle(colour string) tcell.Style {
	base := tcell.StyleDefault.Bold(true)
	if strings.HasPrefix(colour, "#") {
		if c, err := colorful.Hex(colour); err == nil {
			r, g, b := c.RGB255()
			return base.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		}
	}
	return base.Foreground(tcell.GetColor(colour))
}
