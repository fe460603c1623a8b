package export

import (
	"fmt"
	"os"
	"path/filepath"

	"arrowgrid/arrows"
	"arrowgrid/core"
)

// Writer writes path sets beneath a base output directory.
type Writer struct {
	BaseDir string
}

// NewWriter creates a writer rooted at the given directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{BaseDir: baseDir}
}

// WriteGroup writes one colour group. A group with connecting lines
// produces "1-lines.json" and "2-arrows.json" so the files sort in draw
// order; a group without lines produces a single "arrows.json".
func (w *Writer) WriteGroup(set *arrows.PathSet) error {
	dir := filepath.Join(w.BaseDir, set.Colour)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if set.HasLines() {
		if err := w.writeFile(dir, "1-lines.json", set.Lines, set.Colour, arrows.LineThickness); err != nil {
			return err
		}
		return w.writeFile(dir, "2-arrows.json", set.Arrows, set.Colour, arrows.ArrowThickness)
	}
	return w.writeFile(dir, "arrows.json", set.Arrows, set.Colour, arrows.ArrowThickness)
}

func (w *Writer) writeFile(dir, name string, shapes [][]core.Point, colour string, thickness float64) error {
	body, err := Marshal(shapes, colour, thickness)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
