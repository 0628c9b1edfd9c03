package phase2

import (
	"github.com/gcode-clean/gcodeclean/internal/coord"
	"github.com/gcode-clean/gcodeclean/internal/geometry"
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

// RadiusConverter rewrites R-form arcs (G2/G3 ... R<radius>) into their
// center form (I/J/K) per §4.4.1, carrying the previous target coordinate
// forward as every line's implicit start point.
type RadiusConverter struct {
	prev     coord.Coord
	havePrev bool
}

// NewRadiusConverter creates a converter with no carried start point.
func NewRadiusConverter() *RadiusConverter { return &RadiusConverter{} }

// Next converts one line. Lines with no R-form arc, or a malformed one
// (zero circle intersections), pass through unchanged.
func (r *RadiusConverter) Next(l gline.Line) gline.Line {
	target, hasXYZ := extractXYZ(l)
	cmd, hasCmd := l.MotionCommand()
	rt, hasR := l.Find("R")

	defer func() {
		if hasXYZ {
			r.prev = coord.Merge(r.prev, target, true)
			r.havePrev = true
		}
	}()

	if !hasCmd || !hasR || !hasXYZ || !target.HasCoordPair() || !r.havePrev {
		return l
	}
	clockwise := cmd.IsGCommand("2")
	if !clockwise && !cmd.IsGCommand("3") {
		return l
	}

	points := geometry.FindIntersections(r.prev, target, rt.Number)
	if len(points) == 0 {
		return l // malformed radius: pass through (§7 semantic-but-recoverable)
	}

	center := points[0]
	if len(points) > 1 {
		plane, ok := geometry.OrthogonalPlane([]coord.Coord{r.prev, target})
		if ok {
			for _, p := range points {
				dir := geometry.DirectionOfPoint(r.prev, target, p, plane)
				wantNegative := clockwise
				if (wantNegative && dir < 0) || (!wantNegative && dir > 0) {
					center = p
					break
				}
			}
		}
	}

	out := l.Without("R")
	offset := center.Sub(r.prev)
	for _, pair := range []struct {
		axis   coord.Axis
		letter string
	}{{coord.X, "I"}, {coord.Y, "J"}, {coord.Z, "K"}} {
		if center.Has(pair.axis) && r.prev.Has(pair.axis) {
			v := offset.Get(pair.axis)
			out = out.Append(token.Token{Letter: pair.letter, Number: v, HasNumber: true, Kind: token.KindArgument, Source: pair.letter + v.String()})
		}
	}
	return out
}

// RunRadiusConversion drains an entire slice through a fresh RadiusConverter.
func RunRadiusConversion(lines []gline.Line) []gline.Line {
	conv := NewRadiusConverter()
	out := make([]gline.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, conv.Next(l))
	}
	return out
}
