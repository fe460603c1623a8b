package export

import (
	"encoding/json"
	"strings"
	"testing"

	"arrowgrid/arrows"
	"arrowgrid/core"
)

func TestMarshalCollapsesPoints(t *testing.T) {
	shapes := [][]core.Point{
		{{X: 1, Y: 0}, {X: 0.5, Y: -0.25}},
	}

	got, err := Marshal(shapes, "grey", arrows.ArrowThickness)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	// Point objects collapse onto one line; the rest stays indented.
	for _, want := range []string{
		`{ "x": 1, "y": 0 }`,
		`{ "x": 0.5, "y": -0.25 }`,
		`"thickness": 0.0265625`,
		`"color": "grey"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\"x\": 1,\n") {
		t.Errorf("point object was not collapsed:\n%s", got)
	}
}

func TestMarshalRoundTrips(t *testing.T) {
	shapes := [][]core.Point{
		{{X: 0.538, Y: 1}, {X: 0.7, Y: 1}, {X: 1, Y: 0.7}},
	}

	body, err := Marshal(shapes, "blue", arrows.LineThickness)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	// Collapsing is cosmetic only; the document must stay valid JSON.
	var file PathFile
	if err := json.Unmarshal([]byte(body), &file); err != nil {
		t.Fatalf("collapsed output is not valid JSON: %v\n%s", err, body)
	}
	if len(file.Lines) != 1 || len(file.Lines[0]) != 3 {
		t.Errorf("round trip lost shapes: %+v", file.Lines)
	}
	if file.Style.Thickness != arrows.LineThickness || file.Style.Color != "blue" {
		t.Errorf("round trip lost style: %+v", file.Style)
	}
}
