package phase2

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/coord"
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

// The cutting-run detector's thresholds (§4.4.4) are its zClamp and tol
// parameters rather than fixed constants: a line is
// "travel" when it's a G0 move whose Z sits at or above zClamp minus
// tolerance; two travels are the "same place" when their XY agree within
// tolerance.
func isTravelMove(l gline.Line, zClamp, tol decimal.Decimal) bool {
	isG0 := false
	for _, t := range l.Tokens {
		if t.IsGCommand("0") {
			isG0 = true
		}
	}
	if !isG0 {
		return false
	}
	zt, ok := l.Find("Z")
	if !ok {
		return false
	}
	return zt.Number.GreaterThanOrEqual(zClamp.Sub(tol))
}

func sameXY(a, b gline.Line, tol decimal.Decimal) bool {
	ca, _ := extractXYZ(a)
	cb, _ := extractXYZ(b)
	for _, axis := range []coord.Axis{coord.X, coord.Y} {
		if ca.Get(axis).Sub(cb.Get(axis)).Abs().GreaterThan(tol) {
			return false
		}
	}
	return true
}

func commentToken(text string) token.Token {
	return token.Token{Source: text, Kind: token.KindComment}
}

// buildTravellingComment renders the bit-exact wire format of §6.
func buildTravellingComment(seq, subSeq, id int, maxZ decimal.Decimal, tool string, entry, exit gline.Line) token.Token {
	text := fmt.Sprintf("(||Travelling||%d||%d||%d||%s||%s||>>%s>>%s>>||)",
		seq, subSeq, id, maxZ.StringFixed(3), tool, entry.String(), exit.String())
	return commentToken(text)
}

// InsertTravellingComments identifies cutting runs bounded by travel moves
// and emits a Travelling marker after each run's last cutting move (§4.4.4).
// Every node is assigned seq 0 and subSeq 0; the splitter's depth-band pass
// (internal/splitter) reassigns subSeq later. Travels between runs that
// share the same XY within tolerance collapse to a single G0 line.
func InsertTravellingComments(lines []gline.Line, ctx *modal.Context, zClamp, tol decimal.Decimal) []gline.Line {
	var out []gline.Line
	var lastEmittedTravel *gline.Line
	var runEntry gline.Line
	inRun := false
	var runMaxZ decimal.Decimal
	haveMaxZ := false
	id := 0
	tool := ctx.ToolName()

	flushTravel := func(l gline.Line) {
		if lastEmittedTravel != nil && sameXY(*lastEmittedTravel, l, tol) {
			return // collapse: already at this XY
		}
		out = append(out, l)
		cp := l
		lastEmittedTravel = &cp
	}

	for i, l := range lines {
		if isTravelMove(l, zClamp, tol) {
			if inRun {
				// run just ended: emit the marker using this travel as exit.
				out = append(out, commentLine(buildTravellingComment(0, 0, id, runMaxZ, tool, runEntry, l)))
				id++
				inRun = false
				haveMaxZ = false
			}
			flushTravel(l)
			runEntry = l
			continue
		}
		out = append(out, l)
		if _, ok := l.MotionCommand(); ok {
			inRun = true
			if z, found := l.Find("Z"); found {
				if !haveMaxZ || z.Number.GreaterThan(runMaxZ) {
					runMaxZ = z.Number
					haveMaxZ = true
				}
			}
		}
		if i == len(lines)-1 && inRun {
			out = append(out, commentLine(buildTravellingComment(0, 0, id, runMaxZ, tool, runEntry, l)))
		}
	}
	return out
}

func commentLine(t token.Token) gline.Line { return gline.New([]token.Token{t}) }
