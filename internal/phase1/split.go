package phase1

import (
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

// executionStep names the fixed 20-step RS-274/NGC execution order of §4.2.2.
// Besides isCoolant's membership check, its only use here is to resolve ties when more than one token of the same
// modal category ends up in a single emitted group (the "last occurrence
// wins" rule) — the primary grouping algorithm below walks the line
// left-to-right and starts a new output line whenever a second command
// token (G or M) would otherwise land on the same line as a first, which is
// what the worked example (spec.md §8 S5) requires.
type executionStep int

const (
	stepFeedRateMode executionStep = iota
	stepF
	stepS
	stepT
	stepM6
	stepSpindle
	stepCoolant
	stepOverrides
	stepDwell
	stepPlane
	stepUnits
	stepCutterComp
	stepLengthComp
	stepCoordSystem
	stepPathControl
	stepDistanceMode
	stepRetractMode
	stepHomeSet
	stepModifier
	stepResidualMotion
	stepProgramStop
)

func stepOf(t token.Token) executionStep {
	switch t.Letter {
	case "G":
		switch t.Number.String() {
		case "93", "94":
			return stepFeedRateMode
		case "4":
			return stepDwell
		case "17", "18", "19":
			return stepPlane
		case "20", "21":
			return stepUnits
		case "40", "41", "42":
			return stepCutterComp
		case "43", "49":
			return stepLengthComp
		case "54", "55", "56", "57", "58", "59", "59.1", "59.2", "59.3":
			return stepCoordSystem
		case "61", "61.1", "64":
			return stepPathControl
		case "90", "91":
			return stepDistanceMode
		case "98", "99":
			return stepRetractMode
		case "28", "30", "10", "92", "92.1", "92.2":
			return stepHomeSet
		case "53":
			return stepModifier
		default:
			return stepResidualMotion // G0-G3, G80-G89
		}
	case "M":
		switch t.Number.String() {
		case "6":
			return stepM6
		case "3", "4", "5":
			return stepSpindle
		case "7", "8", "9":
			return stepCoolant
		case "48", "49":
			return stepOverrides
		default:
			return stepProgramStop // M0,M1,M2,M30,M60
		}
	case "F":
		return stepF
	case "S":
		return stepS
	case "T":
		return stepT
	default:
		return stepResidualMotion
	}
}

// isCoolant reports whether t is one of the step-8 coolant M-codes, reusing
// stepOf as the single source of truth for modal-group membership: SplitLine
// diverts these to their own line (every occurrence kept) before stepOf's
// tie-break logic ever sees a command token, so they never reach the
// t.IsCommand() branch below.
func isCoolant(t token.Token) bool {
	return t.IsCommand() && t.Letter == "M" && stepOf(t) == stepCoolant
}

// SplitLine enforces one command per line (§4.2.2). A line with at most one
// command token is returned unchanged (as its sole element). Otherwise the
// line is grouped left-to-right: a new output line starts whenever a second
// distinct command token (G or M) would land on a group that already holds
// one, EXCEPT when the incoming command shares the same 20-step execution
// group as the one already buffered — §4.2.2's "at most one token is
// extracted per emit (the LAST occurrence wins for single-valued groups)" —
// in which case the new token replaces the old one in place rather than
// starting a new line. Coolant M-codes always start their own group (every
// occurrence is kept, per the spec's "emit all occurrences" rule for step
// 8), and comments always become their own trailing group. The original
// line's N-number token, if present, is prepended only to the first emitted
// line.
func SplitLine(l gline.Line) []gline.Line {
	commandCount := 0
	for _, t := range l.Tokens {
		if t.IsCommand() {
			commandCount++
		}
	}
	if commandCount <= 1 {
		return []gline.Line{l}
	}

	var lineNumber *token.Token
	var buf []token.Token
	bufHasCommand := false
	bufCommandIdx := -1
	var out []gline.Line

	emit := func(tokens []token.Token) {
		if len(tokens) == 0 {
			return
		}
		if lineNumber != nil && len(out) == 0 {
			tokens = append([]token.Token{*lineNumber}, tokens...)
		}
		out = append(out, gline.New(tokens))
	}
	flush := func() {
		if len(buf) == 0 {
			return
		}
		emit(buf)
		buf = nil
		bufHasCommand = false
		bufCommandIdx = -1
	}

	for _, t := range l.Tokens {
		switch {
		case t.IsLineNumber():
			cp := t
			lineNumber = &cp
		case t.IsComment():
			flush()
			emit([]token.Token{t})
		case isCoolant(t):
			flush()
			emit([]token.Token{t})
		case t.IsCommand():
			if bufHasCommand && stepOf(t) == stepOf(buf[bufCommandIdx]) {
				buf[bufCommandIdx] = t
				continue
			}
			if bufHasCommand {
				flush()
			}
			buf = append(buf, t)
			bufCommandIdx = len(buf) - 1
			bufHasCommand = true
		default:
			buf = append(buf, t)
		}
	}
	flush()
	return out
}
