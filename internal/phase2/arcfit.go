package phase2

import (
	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/coord"
	"github.com/gcode-clean/gcodeclean/internal/geometry"
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

// tryArcFit fits a circle through a, b, c and checks it against the §4.4.3
// acceptance criteria: positive radius above tolerance, both chord sagittas
// within tolerance, and — when continuing an existing arc — center and
// radius staying within tolerance of the previous fit. When continuing an
// arc only the B-C sagitta is checked: A is then the arc's anchor, so A-B
// spans the whole run absorbed so far rather than a single chord.
func tryArcFit(a, b, c gline.Line, tol decimal.Decimal, inArc bool, prevCenter coord.Coord, prevRadius decimal.Decimal) (geometry.CircleFit, bool) {
	ca, _ := extractXYZ(a)
	cb, _ := extractXYZ(b)
	cc, _ := extractXYZ(c)

	fit := geometry.FindCircle(ca, cb, cc)
	if !fit.OK || fit.Radius.LessThanOrEqual(tol) {
		return fit, false
	}

	r, _ := fit.Radius.Float64()
	abChord, _ := geometry.Distance(ca, cb).Float64()
	bcChord, _ := geometry.Distance(cb, cc).Float64()
	tolF, _ := tol.Float64()

	if (!inArc && geometry.Sagitta(r, abChord) > tolF) || geometry.Sagitta(r, bcChord) > tolF {
		return fit, false
	}

	if inArc {
		for _, axis := range allAxes {
			if fit.Center.Has(axis) != prevCenter.Has(axis) {
				continue
			}
			if fit.Center.Has(axis) && fit.Center.Get(axis).Sub(prevCenter.Get(axis)).Abs().GreaterThan(tol) {
				return fit, false
			}
		}
		if fit.Radius.Sub(prevRadius).Abs().GreaterThan(tol) {
			return fit, false
		}
	}
	return fit, true
}

// rewriteArcLine turns a straight motion line into an arc line: its command
// becomes G2 (clockwise) or G3, any R/I/J/K tokens are dropped, and I/J/K
// offsets from anchor to center are appended (only on axes both share).
func rewriteArcLine(l gline.Line, anchor, center coord.Coord, clockwise bool) gline.Line {
	num := decimal.NewFromInt(3)
	if clockwise {
		num = decimal.NewFromInt(2)
	}
	tokens := make([]token.Token, 0, len(l.Tokens)+3)
	replaced := false
	for _, t := range l.Tokens {
		switch {
		case !replaced && t.IsCommand() && t.Letter == "G":
			tokens = append(tokens, token.Token{Letter: "G", Number: num, HasNumber: true, Kind: token.KindCommand, Source: "G" + num.String()})
			replaced = true
		case t.Letter == "R", t.Letter == "I", t.Letter == "J", t.Letter == "K":
			// dropped
		default:
			tokens = append(tokens, t)
		}
	}
	out := gline.New(tokens)
	offset := center.Sub(anchor)
	for _, pair := range []struct {
		axis   coord.Axis
		letter string
	}{{coord.X, "I"}, {coord.Y, "J"}, {coord.Z, "K"}} {
		if center.Has(pair.axis) && anchor.Has(pair.axis) {
			v := offset.Get(pair.axis)
			out = out.Append(token.Token{Letter: pair.letter, Number: v, HasNumber: true, Kind: token.KindArgument, Source: pair.letter + v.String()})
		}
	}
	return out
}

// DedupLinearToArc runs the same three-frame window as DedupLinear, but
// successful arc fits absorb points instead of emitting them outright
// (§4.4.3): a run of points lying on a common circle collapses to a single
// G2/G3 line once the run ends. As in DedupLinear, a candidate is only
// admitted into the window when it's CompatibleWith (§3) whichever line the
// window most recently accepted — a G0 travel can never be fit into the same
// arc as the G1 cutting moves around it just because their raw coordinates
// happen to lie on a common circle.
func DedupLinearToArc(lines []gline.Line, tol decimal.Decimal) []gline.Line {
	var out []gline.Line
	var a, b *gline.Line
	var pendingEnd *gline.Line
	var arcAnchor, arcCenter coord.Coord
	var arcRadius decimal.Decimal
	arcClockwise := false
	inArc := false

	closeArc := func() {
		if inArc && pendingEnd != nil {
			if a != nil {
				out = append(out, *a)
				a = nil
			}
			out = append(out, rewriteArcLine(*pendingEnd, arcAnchor, arcCenter, arcClockwise))
		}
		inArc = false
		pendingEnd = nil
	}

	var process func(l gline.Line)
	process = func(l gline.Line) {
		var last *gline.Line
		if b != nil {
			last = b
		} else {
			last = a
		}
		incompatible := last != nil && !last.CompatibleWith(l)
		if !isFullXYZMotion(l) || incompatible {
			closeArc()
			if a != nil {
				out = append(out, *a)
			}
			if b != nil {
				out = append(out, *b)
			}
			a, b = nil, nil
			if !isFullXYZMotion(l) {
				out = append(out, l)
				return
			}
			cp := l
			a = &cp
			return
		}
		if a == nil {
			cp := l
			a = &cp
			return
		}
		if b == nil {
			cp := l
			b = &cp
			return
		}

		c := l
		if !isSignificant(*a, *b, c, tol) {
			b = nil
			process(c)
			return
		}

		if fit, ok := tryArcFit(*a, *b, c, tol, inArc, arcCenter, arcRadius); ok {
			if !inArc {
				arcAnchor, _ = extractXYZ(*a)
			}
			arcCenter, arcRadius, arcClockwise = fit.Center, fit.Radius, fit.Clockwise
			inArc = true
			pending := b
			pendingEnd = pending
			b = nil
			process(c)
			return
		}

		closeArc()
		if a != nil {
			out = append(out, *a)
		}
		out = append(out, *b)
		cp := c
		a = &cp
		b = nil
	}

	for _, l := range lines {
		process(l)
	}
	closeArc()
	if a != nil {
		out = append(out, *a)
	}
	if b != nil {
		out = append(out, *b)
	}
	return out
}
