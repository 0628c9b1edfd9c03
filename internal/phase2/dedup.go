package phase2

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/coord"
	"github.com/gcode-clean/gcodeclean/internal/geometry"
	"github.com/gcode-clean/gcodeclean/internal/gline"
)

var allAxes = []coord.Axis{coord.X, coord.Y, coord.Z}

func withinBoundingRange(a, b, c coord.Coord) bool {
	for _, axis := range allAxes {
		lo, hi := a.Get(axis), c.Get(axis)
		if lo.GreaterThan(hi) {
			lo, hi = hi, lo
		}
		v := b.Get(axis)
		if v.LessThan(lo) || v.GreaterThan(hi) {
			return false
		}
	}
	return true
}

func axisRelevant(a, b, c coord.Coord, axis coord.Axis, tol decimal.Decimal) bool {
	ac := a.Get(axis).Sub(c.Get(axis)).Abs()
	ab := a.Get(axis).Sub(b.Get(axis)).Abs()
	bc := b.Get(axis).Sub(c.Get(axis)).Abs()
	return ac.GreaterThanOrEqual(tol) && ab.GreaterThanOrEqual(tol) && bc.GreaterThanOrEqual(tol)
}

type plane struct {
	p          geometry.Plane
	u, v       coord.Axis
}

var planes = []plane{
	{geometry.PlaneXY, coord.X, coord.Y},
	{geometry.PlaneXZ, coord.X, coord.Z},
	{geometry.PlaneYZ, coord.Y, coord.Z},
}

// isSignificant implements the §4.4.2 significance test shared by DedupLinear
// and DedupLinearToArc: B is always significant when it sits outside the A-C
// bounding box. Inside the box, B is a no-op (not significant) when fewer
// than two axes show meaningful per-axis separation, or otherwise when every
// plane of two relevant axes shows matching A->B / A->C angles.
func isSignificant(a, b, c gline.Line, tol decimal.Decimal) bool {
	ca, _ := extractXYZ(a)
	cb, _ := extractXYZ(b)
	cc, _ := extractXYZ(c)

	if !withinBoundingRange(ca, cb, cc) {
		return true
	}

	relevant := make(map[coord.Axis]bool, 3)
	count := 0
	for _, axis := range allAxes {
		if axisRelevant(ca, cb, cc, axis, tol) {
			relevant[axis] = true
			count++
		}
	}
	if count < 2 {
		return false
	}

	for _, pl := range planes {
		if !relevant[pl.u] || !relevant[pl.v] {
			continue
		}
		angAC, okAC := geometry.AngleOnPlane(ca, cc, pl.p)
		angAB, okAB := geometry.AngleOnPlane(ca, cb, pl.p)
		if !okAC || !okAB {
			continue
		}
		diff := math.Abs(angAC - angAB)
		if decimal.NewFromFloat(diff).GreaterThanOrEqual(tol) {
			return true
		}
	}
	return false
}

// DedupLinear removes colinear interior points from a run of full-XYZ
// motion lines (§4.4.2). It never drops the first or last line of the
// stream and never drops a line not flanked by linearly compatible motion
// lines on both sides, per the §8 invariant.
type DedupLinear struct {
	tol  decimal.Decimal
	a, b *gline.Line
}

// NewDedupLinear creates a colinear-dedup pass at the given tolerance.
func NewDedupLinear(tol decimal.Decimal) *DedupLinear {
	return &DedupLinear{tol: tol}
}

// lastAdmitted returns whichever window slot most recently accepted a line
// (B if filled, else A, else nil), the line the next candidate must be
// CompatibleWith to be admitted.
func (d *DedupLinear) lastAdmitted() *gline.Line {
	if d.b != nil {
		return d.b
	}
	return d.a
}

// Next feeds one line and returns zero or more lines to emit now.
func (d *DedupLinear) Next(l gline.Line) []gline.Line {
	last := d.lastAdmitted()
	incompatible := last != nil && !last.CompatibleWith(l)
	if !isFullXYZMotion(l) || incompatible {
		var out []gline.Line
		if d.a != nil {
			out = append(out, *d.a)
		}
		if d.b != nil {
			out = append(out, *d.b)
		}
		d.a, d.b = nil, nil
		if !isFullXYZMotion(l) {
			return append(out, l)
		}
		cp := l
		d.a = &cp
		return out
	}

	if d.a == nil {
		cp := l
		d.a = &cp
		return nil
	}
	if d.b == nil {
		cp := l
		d.b = &cp
		return nil
	}

	c := l
	if isSignificant(*d.a, *d.b, c, d.tol) {
		out := []gline.Line{*d.a, *d.b}
		cp := c
		d.a = &cp
		d.b = nil
		return out
	}
	// B is a no-op: window advances A<-A, B<-nil, then retries with C as
	// the new B.
	d.b = nil
	return d.Next(c)
}

// Flush returns the lines still held in the window; call once after the
// last input line.
func (d *DedupLinear) Flush() []gline.Line {
	var out []gline.Line
	if d.a != nil {
		out = append(out, *d.a)
	}
	if d.b != nil {
		out = append(out, *d.b)
	}
	d.a, d.b = nil, nil
	return out
}

// RunDedupLinear drains an entire slice through a fresh DedupLinear pass.
func RunDedupLinear(lines []gline.Line, tol decimal.Decimal) []gline.Line {
	d := NewDedupLinear(tol)
	var out []gline.Line
	for _, l := range lines {
		out = append(out, d.Next(l)...)
	}
	return append(out, d.Flush()...)
}
