package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"arrowgrid/arrows"
	"arrowgrid/core"
)

func readPathFile(t *testing.T, path string) PathFile {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	var file PathFile
	if err := json.Unmarshal(data, &file); err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	return file
}

func TestWriteGroupWithLines(t *testing.T) {
	base := t.TempDir()
	writer := NewWriter(base)

	set := &arrows.PathSet{
		Colour: "blue",
		Arrows: [][]core.Point{{{X: 1, Y: 0}}},
		Lines:  [][]core.Point{{{X: 0.5, Y: 1}, {X: 0.7, Y: 1}, {X: 1, Y: 0.7}}},
	}
	if err := writer.WriteGroup(set); err != nil {
		t.Fatalf("WriteGroup returned error: %v", err)
	}

	// Files are numbered so they sort in draw order: lines under the tips.
	lines := readPathFile(t, filepath.Join(base, "blue", "1-lines.json"))
	if lines.Style.Thickness != arrows.LineThickness {
		t.Errorf("line thickness = %v, want %v", lines.Style.Thickness, arrows.LineThickness)
	}

	shapes := readPathFile(t, filepath.Join(base, "blue", "2-arrows.json"))
	if shapes.Style.Thickness != arrows.ArrowThickness {
		t.Errorf("arrow thickness = %v, want %v", shapes.Style.Thickness, arrows.ArrowThickness)
	}
	if shapes.Style.Color != "blue" {
		t.Errorf("arrow colour = %q, want blue", shapes.Style.Color)
	}
}

func TestWriteGroupWithoutLines(t *testing.T) {
	base := t.TempDir()
	writer := NewWriter(base)

	set := &arrows.PathSet{
		Colour: "grey",
		Arrows: [][]core.Point{{{X: 1, Y: 0}}},
	}
	if err := writer.WriteGroup(set); err != nil {
		t.Fatalf("WriteGroup returned error: %v", err)
	}

	file := readPathFile(t, filepath.Join(base, "grey", "arrows.json"))
	if file.Style.Thickness != arrows.ArrowThickness {
		t.Errorf("arrow thickness = %v, want %v", file.Style.Thickness, arrows.ArrowThickness)
	}

	if _, err := os.Stat(filepath.Join(base, "grey", "1-lines.json")); !os.IsNotExist(err) {
		t.Error("a group without lines should not write a lines file")
	}
}
