// Package phase2 implements geometric simplification (§4.4): arc-radius-to-
// center conversion, colinear dedup, linear-run-to-arc fitting, and optional
// travelling-comment insertion. Every pass here reads and writes gline.Line
// values built by internal/phase1 and leans on internal/geometry for the
// underlying circle math.
package phase2

import (
	"github.com/gcode-clean/gcodeclean/internal/coord"
	"github.com/gcode-clean/gcodeclean/internal/gline"
)

var xyzLetters = []string{"X", "Y", "Z"}

func letterAxis(letter string) coord.Axis {
	switch letter {
	case "X":
		return coord.X
	case "Y":
		return coord.Y
	default:
		return coord.Z
	}
}

// extractXYZ reads the X/Y/Z arguments off a line into a partial coord.
func extractXYZ(l gline.Line) (coord.Coord, bool) {
	var c coord.Coord
	found := false
	for _, ltr := range xyzLetters {
		if t, ok := l.Find(ltr); ok {
			c = c.With(letterAxis(ltr), t.Number)
			found = true
		}
	}
	return c, found
}

// isFullXYZMotion reports a line carries a motion command and explicit X, Y
// and Z arguments (the shape Phase-1 augmentation guarantees, per §8).
func isFullXYZMotion(l gline.Line) bool {
	if _, ok := l.MotionCommand(); !ok {
		return false
	}
	c, _ := extractXYZ(l)
	return c.Has(coord.X) && c.Has(coord.Y) && c.Has(coord.Z)
}
