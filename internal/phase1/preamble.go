package phase1

import (
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

// Preamble marker comments (§6). Wording is ours; round-trip recognition is
// what downstream phases (the injector, the splitter) depend on.
const (
	MarkerPreambleCompletion = "(Preamble completion by GCodeClean)"
	MarkerPreambleCompleted  = "(Preamble completed by GCodeClean)"
)

func commentLine(text string) gline.Line {
	return gline.New([]token.Token{{Source: text, Kind: token.KindComment}})
}

// PreambleStripper consumes Lines one at a time, recording every line seen
// before the first motion command into a modal.Context. When the first
// motion line arrives, it flushes the recorded non-output lines sandwiched
// between the two marker comments, followed by the motion line itself, and
// becomes a pass-through for every line after that point.
type PreambleStripper struct {
	ctx        *modal.Context
	inPreamble bool
}

// NewPreambleStripper creates a stripper ready to consume the first line of
// a stream.
func NewPreambleStripper() *PreambleStripper {
	return &PreambleStripper{ctx: modal.New(), inPreamble: true}
}

// Context returns the modal context accumulated so far.
func (p *PreambleStripper) Context() *modal.Context { return p.ctx }

// Next feeds one input line and returns zero or more output lines.
func (p *PreambleStripper) Next(l gline.Line) []gline.Line {
	if !p.inPreamble {
		return []gline.Line{l}
	}

	if l.HasMovementCommand() {
		var out []gline.Line
		out = append(out, commentLine(MarkerPreambleCompletion))
		out = append(out, p.ctx.NonOutputLines()...)
		out = append(out, commentLine(MarkerPreambleCompleted))
		p.ctx.FlagAllAsOutput()
		p.inPreamble = false
		out = append(out, l)
		return out
	}

	p.ctx.Update(l, false)
	return nil
}

// Flush should be called once the input stream ends; if no motion command
// was ever seen, the whole file was preamble and nothing further is owed
// (the stripper never force-emits an incomplete preamble).
func (p *PreambleStripper) Flush() []gline.Line {
	return nil
}
