// Package geometry is the geometry kernel (§4.7): coordinate algebra built
// on top of internal/coord, three-point circle fitting, circle/circle
// intersection, orthogonal-plane detection, and the XY/XZ/YZ angle and
// distance primitives the dedup/arc-fit phases are built on. Boundary
// values are decimals; intermediate math is IEEE-754 double, exactly as
// §9 of the specification prescribes.
package geometry

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/coord"
)

// Plane is one of the three orthogonal evaluation planes.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// axesFor returns the two in-plane axes for a Plane, in (u, v) order.
func axesFor(p Plane) (u, v coord.Axis) {
	switch p {
	case PlaneXY:
		return coord.X, coord.Y
	case PlaneXZ:
		return coord.X, coord.Z
	default:
		return coord.Y, coord.Z
	}
}

// f64 converts a decimal axis value to float64 for intermediate math.
func f64(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

// Angle returns atan2(a,b) in degrees, in (-180, 180] per §4.7.
func Angle(a, b float64) float64 {
	deg := math.Atan2(a, b) * 180 / math.Pi
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// Distance returns the Euclidean distance between two full 3D coords.
func Distance(a, b coord.Coord) decimal.Decimal {
	dx := f64(a.Get(coord.X)) - f64(b.Get(coord.X))
	dy := f64(a.Get(coord.Y)) - f64(b.Get(coord.Y))
	dz := f64(a.Get(coord.Z)) - f64(b.Get(coord.Z))
	return decimal.NewFromFloat(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// DirectionOfPoint returns sign(ΔBx·ΔCy − ΔBy·ΔCx) with origin at A, i.e.
// the handedness of the turn A→B→C projected onto the given plane.
func DirectionOfPoint(a, b, c coord.Coord, plane Plane) int {
	u, v := axesFor(plane)
	bx := f64(b.Get(u)) - f64(a.Get(u))
	by := f64(b.Get(v)) - f64(a.Get(v))
	cx := f64(c.Get(u)) - f64(a.Get(u))
	cy := f64(c.Get(v)) - f64(a.Get(v))
	cross := bx*cy - by*cx
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// OrthogonalPlane picks the axis that is constant across every coord in
// points (the "dropped" axis) and returns the plane the remaining two axes
// define. ok is false when no single axis is shared by all points.
func OrthogonalPlane(points []coord.Coord) (Plane, bool) {
	ortho := coord.Ortho(points)
	switch {
	case ortho&coord.Z != 0:
		return PlaneXY, true
	case ortho&coord.Y != 0:
		return PlaneXZ, true
	case ortho&coord.X != 0:
		return PlaneYZ, true
	default:
		return 0, false
	}
}

// AngleOnPlane computes the angle (degrees, §4.7) of vector from-to,
// projected onto the given plane. ok is false if either axis of the plane
// is unset on either point.
func AngleOnPlane(from, to coord.Coord, plane Plane) (float64, bool) {
	u, v := axesFor(plane)
	if !from.Has(u) || !from.Has(v) || !to.Has(u) || !to.Has(v) {
		return 0, false
	}
	du := f64(to.Get(u)) - f64(from.Get(u))
	dv := f64(to.Get(v)) - f64(from.Get(v))
	return Angle(dv, du), true
}

// Sagitta returns the perpendicular distance from the midpoint of a chord
// of the given length to an arc of the given radius: r - sqrt(r^2 - (c/2)^2).
// Returns math.Inf(1) if the chord is longer than the diameter (no real fit).
func Sagitta(radius, chord float64) float64 {
	half := chord / 2
	inner := radius*radius - half*half
	if inner < 0 {
		return math.Inf(1)
	}
	return radius - math.Sqrt(inner)
}

// CircleFit is the result of a three-point circle fit.
type CircleFit struct {
	Center      coord.Coord
	Radius      decimal.Decimal
	Clockwise   bool
	Plane       Plane
	OK          bool
}

// FindCircle fits a circle through three points, dropping the axis that is
// constant across all three (§4.7, §4.4.3). It solves the standard 2x2
// linear system for (g, f) in x^2+y^2+2gx+2fy+c=0, with
// center = (-g, -f, constantAxisValue) and radius = sqrt(g^2+f^2-c),
// rounded to 5 decimals. Returns OK=false when the points are not coplanar,
// are colinear, or yield a singular (infinite) determinant.
func FindCircle(a, b, c coord.Coord) CircleFit {
	plane, ok := OrthogonalPlane([]coord.Coord{a, b, c})
	if !ok {
		return CircleFit{}
	}
	u, v := axesFor(plane)

	ax, ay := f64(a.Get(u)), f64(a.Get(v))
	bx, by := f64(b.Get(u)), f64(b.Get(v))
	cx, cy := f64(c.Get(u)), f64(c.Get(v))

	// Standard linear system derived from subtracting the general circle
	// equation pairwise for (A,B) and (B,C):
	//   2(bx-ax)g + 2(by-ay)f = (ax^2+ay^2) - (bx^2+by^2)
	//   2(cx-bx)g + 2(cy-by)f = (bx^2+by^2) - (cx^2+cy^2)
	a1, b1 := 2*(bx-ax), 2*(by-ay)
	a2, b2 := 2*(cx-bx), 2*(cy-by)
	c1 := (ax*ax + ay*ay) - (bx*bx + by*by)
	c2 := (bx*bx + by*by) - (cx*cx + cy*cy)

	det := a1*b2 - a2*b1
	if det == 0 || math.IsInf(det, 0) || math.IsNaN(det) {
		return CircleFit{}
	}

	g := (c1*b2 - c2*b1) / det
	f := (a1*c2 - a2*c1) / det
	cc := -(ax*ax + ay*ay) - 2*g*ax - 2*f*ay

	radiusSq := g*g + f*f - cc
	if radiusSq < 0 || math.IsInf(radiusSq, 0) {
		return CircleFit{}
	}
	radius := math.Sqrt(radiusSq)
	if math.IsInf(radius, 0) || math.IsNaN(radius) {
		return CircleFit{}
	}

	centerU := decimal.NewFromFloat(-g).Round(5)
	centerV := decimal.NewFromFloat(-f).Round(5)

	var center coord.Coord
	switch plane {
	case PlaneXY:
		center = coord.New(centerU, centerV, a.Get(coord.Z), coord.X|coord.Y|coord.Z)
	case PlaneXZ:
		center = coord.New(centerU, a.Get(coord.Y), centerV, coord.X|coord.Y|coord.Z)
	default:
		center = coord.New(a.Get(coord.X), centerU, centerV, coord.X|coord.Y|coord.Z)
	}

	clockwise := DirectionOfPoint(a, b, center, plane) < 0

	return CircleFit{
		Center:    center,
		Radius:    decimal.NewFromFloat(radius).Round(5),
		Clockwise: clockwise,
		Plane:     plane,
		OK:        true,
	}
}

// FindIntersections computes the 0, 1 or 2 intersection points of two
// circles of equal radius r centred at a and b, per the standard two-circle
// intersection formula: a_off = d/2, h = sqrt(r^2-a_off^2), project the
// midpoint along a->b, then offset perpendicularly by +-h. Returns an empty
// slice when the coords don't share an orthogonal plane, when dist == 0, or
// when dist > 2r.
func FindIntersections(a, b coord.Coord, r decimal.Decimal) []coord.Coord {
	plane, ok := OrthogonalPlane([]coord.Coord{a, b})
	if !ok {
		return nil
	}
	u, v := axesFor(plane)

	ax, ay := f64(a.Get(u)), f64(a.Get(v))
	bx, by := f64(b.Get(u)), f64(b.Get(v))
	radius := f64(r)

	dx, dy := bx-ax, by-ay
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist == 0 || dist > 2*radius {
		return nil
	}

	aOff := dist / 2
	hSq := radius*radius - aOff*aOff
	if hSq < 0 {
		return nil
	}
	h := math.Sqrt(hSq)

	midU := ax + aOff*dx/dist
	midV := ay + aOff*dy/dist

	// Perpendicular unit vector.
	perpU := -dy / dist
	perpV := dx / dist

	constVal := a.Get(otherAxis(plane))

	build := func(pu, pv float64) coord.Coord {
		uVal := decimal.NewFromFloat(pu)
		vVal := decimal.NewFromFloat(pv)
		switch plane {
		case PlaneXY:
			return coord.New(uVal, vVal, constVal, coord.X|coord.Y|coord.Z)
		case PlaneXZ:
			return coord.New(uVal, constVal, vVal, coord.X|coord.Y|coord.Z)
		default:
			return coord.New(constVal, uVal, vVal, coord.X|coord.Y|coord.Z)
		}
	}

	if h == 0 {
		return []coord.Coord{build(midU, midV)}
	}
	p1 := build(midU+h*perpU, midV+h*perpV)
	p2 := build(midU-h*perpU, midV-h*perpV)
	return []coord.Coord{p1, p2}
}

func otherAxis(p Plane) coord.Axis {
	switch p {
	case PlaneXY:
		return coord.Z
	case PlaneXZ:
		return coord.Y
	default:
		return coord.X
	}
}
