// Package preamble implements the preamble/postamble injector pass (§4.3):
// a single scan of the Phase-1 output resolves the modal context present at
// the start of cutting, then a canonical preamble is re-emitted before the
// body, a z-clamp is imposed on every travel move, and a canonical
// postamble is appended at the end.
package preamble

import (
	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
	"github.com/gcode-clean/gcodeclean/internal/phase1"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

const MarkerPostambleCompleted = "(Postamble completed by GCodeClean)"

func commentLine(text string) gline.Line {
	return gline.New([]token.Token{{Source: text, Kind: token.KindComment}})
}

func blankLine() gline.Line { return gline.Line{} }

func isMarker(l gline.Line, text string) bool {
	return len(l.Tokens) == 1 && l.Tokens[0].IsComment() && l.Tokens[0].Source == text
}

// Resolve scans lines (Phase-1 output) up to and including the
// "Preamble completed" marker, replaying every preceding line through a
// fresh modal.Context, and returns that context together with the index of
// the first body line (the line right after the marker, normally the first
// motion command).
func Resolve(lines []gline.Line) (*modal.Context, int) {
	ctx := modal.New()
	for i, l := range lines {
		if isMarker(l, phase1.MarkerPreambleCompleted) {
			return ctx, i + 1
		}
		ctx.Update(l, false)
	}
	// No markers found (e.g. the whole file is preamble, or Phase-1 wasn't
	// run first): resolve against everything up to the first motion line.
	for i, l := range lines {
		if l.HasMovementCommand() {
			ctx = modal.New()
			for _, p := range lines[:i] {
				ctx.Update(p, false)
			}
			return ctx, i
		}
	}
	return ctx, len(lines)
}

// g0Line builds a canonical "G0 Z<value>" line.
func g0Line(z decimal.Decimal) gline.Line {
	return gline.New([]token.Token{
		{Letter: "G", Number: decimal.Zero, HasNumber: true, Kind: token.KindCommand, Source: "G0"},
		{Letter: "Z", Number: z, HasNumber: true, Kind: token.KindArgument, Source: "Z" + z.String()},
	})
}

// isTravel reports whether the line carries a G0 command token.
func isTravel(l gline.Line) bool {
	for _, t := range l.Tokens {
		if t.IsGCommand("0") {
			return true
		}
	}
	return false
}

// clampTravel enforces the travel z-clamp: every G0 move's Z is raised to
// at least zClamp.
func clampTravel(l gline.Line, zClamp decimal.Decimal) gline.Line {
	if !isTravel(l) {
		return l
	}
	zt, ok := l.Find("Z")
	if !ok {
		return l
	}
	if zt.Number.GreaterThanOrEqual(zClamp) {
		return l
	}
	out := l.Without("Z")
	out = out.Append(token.Token{Letter: "Z", Number: zClamp, HasNumber: true, Kind: token.KindArgument, Source: "Z" + zClamp.String()})
	return out
}

// Inject runs the full injector pass: canonical preamble, clamped body,
// canonical postamble.
func Inject(lines []gline.Line, zClamp decimal.Decimal) []gline.Line {
	ctx, bodyStart := Resolve(lines)

	var out []gline.Line
	out = append(out, commentLine(phase1.MarkerPreambleCompletion))
	for _, g := range modal.CanonicalPreambleOrder {
		if l, ok := ctx.GetModalState(g); ok {
			out = append(out, l)
		}
	}
	out = append(out, commentLine(phase1.MarkerPreambleCompleted))
	out = append(out, blankLine())

	for _, l := range lines[bodyStart:] {
		out = append(out, clampTravel(l, zClamp))
	}

	out = append(out, g0Line(zClamp))
	out = append(out, commentLine(MarkerPostambleCompleted))
	out = append(out, gline.New([]token.Token{{Letter: "M", Number: decimal.NewFromInt(30), HasNumber: true, Kind: token.KindCommand, Source: "M30"}}))
	return out
}
