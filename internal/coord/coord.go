// Package coord implements the partial 3-tuple Coord data model (§3): an
// (x,y,z) value plus a bitmask recording which axes are actually present.
package coord

import (
	"github.com/shopspring/decimal"
)

// Axis identifies one of the three linear axes.
type Axis uint8

const (
	X Axis = 1 << iota
	Y
	Z
)

// All is the full axis set, a convenience for callers that need "every
// axis".
const All = X | Y | Z

// Coord is a partial 3-tuple plus the set of axes actually present.
type Coord struct {
	Vals [3]decimal.Decimal // indexed by bit position (X=0, Y=1, Z=2)
	Set  Axis
}

func axisIndex(a Axis) int {
	switch a {
	case X:
		return 0
	case Y:
		return 1
	default:
		return 2
	}
}

// Has reports whether the given axis is present.
func (c Coord) Has(a Axis) bool { return c.Set&a != 0 }

// Get returns the value at the given axis (zero if unset).
func (c Coord) Get(a Axis) decimal.Decimal { return c.Vals[axisIndex(a)] }

// With returns a copy of c with axis a set to v.
func (c Coord) With(a Axis, v decimal.Decimal) Coord {
	out := c
	out.Vals[axisIndex(a)] = v
	out.Set |= a
	return out
}

// New builds a Coord from explicit axis values; pass decimal.Zero and omit
// the corresponding bit in set for an unset axis.
func New(x, y, z decimal.Decimal, set Axis) Coord {
	return Coord{Vals: [3]decimal.Decimal{x, y, z}, Set: set}
}

// Add implements the commutative group operation: componentwise add,
// producing the union of the operand sets. An axis unset on one operand
// contributes zero.
func (c Coord) Add(o Coord) Coord {
	return Coord{
		Vals: [3]decimal.Decimal{
			c.Vals[0].Add(o.Vals[0]),
			c.Vals[1].Add(o.Vals[1]),
			c.Vals[2].Add(o.Vals[2]),
		},
		Set: c.Set | o.Set,
	}
}

// Sub implements componentwise subtract, producing the union of the operand
// sets.
func (c Coord) Sub(o Coord) Coord {
	return Coord{
		Vals: [3]decimal.Decimal{
			c.Vals[0].Sub(o.Vals[0]),
			c.Vals[1].Sub(o.Vals[1]),
			c.Vals[2].Sub(o.Vals[2]),
		},
		Set: c.Set | o.Set,
	}
}

// HasCoordPair reports whether at least two axes are present.
func (c Coord) HasCoordPair() bool {
	n := 0
	for _, a := range []Axis{X, Y, Z} {
		if c.Has(a) {
			n++
		}
	}
	return n >= 2
}

// Ortho returns the subset of axes that hold an identical value across every
// coord in list: empty for zero inputs, every axis for a single input.
func Ortho(list []Coord) Axis {
	if len(list) == 0 {
		return 0
	}
	if len(list) == 1 {
		return list[0].Set
	}
	var result Axis
	for _, a := range []Axis{X, Y, Z} {
		same := true
		first := list[0]
		if !first.Has(a) {
			continue
		}
		for _, c := range list[1:] {
			if !c.Has(a) || !c.Get(a).Equal(first.Get(a)) {
				same = false
				break
			}
		}
		if same {
			result |= a
		}
	}
	return result
}

// Merge yields a new coord equal to a with each axis of b copied in when
// that axis is unset in a, or when overwrite is true.
func Merge(a, b Coord, overwrite bool) Coord {
	out := a
	for _, axis := range []Axis{X, Y, Z} {
		if !b.Has(axis) {
			continue
		}
		if overwrite || !a.Has(axis) {
			out = out.With(axis, b.Get(axis))
		}
	}
	return out
}

// Drop returns a copy of c with the given axis cleared.
func (c Coord) Drop(a Axis) Coord {
	out := c
	out.Set &^= a
	out.Vals[axisIndex(a)] = decimal.Zero
	return out
}
