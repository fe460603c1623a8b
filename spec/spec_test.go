package spec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"arrowgrid/core"
)

func TestExpandShorthand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", "", ""},
		{"Lone key", "w", "w:w"},
		{"Already expanded is unchanged", "w:w", "w:w"},
		{"Explicit pair", "w:e", "w:e"},
		{"Two lone keys", "wd", "w:wd:d"},
		{"Mixed", "wd:axq", "w:wd:ax:xq:q"},
		{"Alias expands too", "s", "s:s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandShorthand(tt.input); got != tt.want {
				t.Errorf("ExpandShorthand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandShorthandIdempotent(t *testing.T) {
	inputs := []string{"w", "wd", "wd:axq", "q:we:d"}
	for _, input := range inputs {
		once := ExpandShorthand(input)
		if twice := ExpandShorthand(once); twice != once {
			t.Errorf("ExpandShorthand(%q): second pass changed %q to %q", input, once, twice)
		}
	}
}

func TestNewDecodesGrid(t *testing.T) {
	grid := [][]string{
		{"", "w"},
		{"x:d", ""},
	}

	s, err := New(TypeSmall, "grey", grid, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	want := []core.ArrowPoint{
		{Cell: core.Point{X: 1, Y: 0}, Position: core.North, Direction: core.North},
		{Cell: core.Point{X: 0, Y: 1}, Position: core.South, Direction: core.East},
	}
	if diff := cmp.Diff(want, s.Points); diff != "" {
		t.Errorf("decoded points mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPreservesTokenOrder(t *testing.T) {
	// Draw order follows string order, left to right.
	s, err := New(TypeSmall, "grey", [][]string{{"wd:aq"}}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	want := []core.ArrowPoint{
		{Cell: core.Point{}, Position: core.North, Direction: core.North},
		{Cell: core.Point{}, Position: core.East, Direction: core.West},
		{Cell: core.Point{}, Position: core.NorthWest, Direction: core.NorthWest},
	}
	if diff := cmp.Diff(want, s.Points); diff != "" {
		t.Errorf("decoded points mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEmptyCells(t *testing.T) {
	s, err := New(TypeSmall, "grey", [][]string{{"", "", ""}}, nil)
	if err != nil {
		t.Fatalf("New returned error for empty cells: %v", err)
	}
	if len(s.Points) != 0 {
		t.Errorf("expected no arrows, got %d", len(s.Points))
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		cell    string
		wantErr error
	}{
		{"Dangling colon", TypeSmall, "w:", ErrMalformed},
		{"Odd colon placement", TypeSmall, ":w:", ErrMalformed},
		{"Unknown key", TypeSmall, "b", core.ErrInvalidKey},
		{"Unknown key in pair", TypeSmall, "w:t", core.ErrInvalidKey},
		{"Bend with equal directions", TypeBent, "w", ErrMalformed},
		{"Bend shorthand cannot bend", TypeBent, "x:x", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.typ, "grey", [][]string{{"", tt.cell}}, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New error = %v, want %v", err, tt.wantErr)
			}
			// Failures must locate the offending cell.
			if !strings.Contains(err.Error(), "cell (1,0)") {
				t.Errorf("error %q does not name the offending cell", err)
			}
		})
	}
}

func TestNewBentAcceptsDistinctPairs(t *testing.T) {
	s, err := New(TypeBent, "blue", [][]string{{"x:d"}}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if len(s.Points) != 1 {
		t.Fatalf("expected one arrow, got %d", len(s.Points))
	}
	if p := s.Points[0]; p.Position != core.South || p.Direction != core.East {
		t.Errorf("decoded pair = (%s, %s), want (South, East)", p.Position, p.Direction)
	}
}

func TestParseDoubles(t *testing.T) {
	s, err := New(TypeSmall, "grey", nil, []string{
		"v",
		"",
		"  .h",
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	want := []core.DoubleArrow{
		{Position: core.Point{X: 0, Y: 0}, Orientation: core.Vertical},
		{Position: core.Point{X: 0.75, Y: 1}, Orientation: core.Horizontal},
	}
	if diff := cmp.Diff(want, s.Doubles); diff != "" {
		t.Errorf("decoded doubles mismatch (-want +got):\n%s", diff)
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("small"); err != nil || typ != TypeSmall {
		t.Errorf("ParseType(small) = %v, %v", typ, err)
	}
	if typ, err := ParseType("bent"); err != nil || typ != TypeBent {
		t.Errorf("ParseType(bent) = %v, %v", typ, err)
	}
	if _, err := ParseType(""); err == nil {
		t.Error("ParseType(\"\") should fail")
	}
	if _, err := ParseType("curvy"); err == nil {
		t.Error("ParseType(curvy) should fail")
	}
}
