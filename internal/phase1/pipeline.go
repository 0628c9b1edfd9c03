// Package phase1 implements normalisation (§4.2): preamble stripping, the
// fixed 20-step single-command-per-line split, and X/Y/Z + I/J/K argument
// augmentation, wired together as a single streaming pass.
package phase1

import (
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
)

// Pipeline runs the three Phase-1 steps over a stream of raw Lines, in
// order: split each input line into one-command-per-line, strip the
// preamble from the split stream, then augment every surviving motion line.
type Pipeline struct {
	stripper  *PreambleStripper
	augmenter *Augmenter
}

// New creates a Phase-1 pipeline.
func New() *Pipeline {
	return &Pipeline{stripper: NewPreambleStripper(), augmenter: NewAugmenter()}
}

// Context returns the modal context built while stripping the preamble.
func (p *Pipeline) Context() *modal.Context { return p.stripper.Context() }

// Next processes one input line, returning the (possibly several, possibly
// zero) output lines it produces.
func (p *Pipeline) Next(l gline.Line) []gline.Line {
	var out []gline.Line
	for _, split := range SplitLine(l) {
		for _, stripped := range p.stripper.Next(split) {
			out = append(out, p.augmenter.Next(stripped))
		}
	}
	return out
}

// Run drains an entire slice of raw Lines through the pipeline.
func Run(lines []gline.Line) ([]gline.Line, *modal.Context) {
	p := New()
	var out []gline.Line
	for _, l := range lines {
		out = append(out, p.Next(l)...)
	}
	return out, p.Context()
}
