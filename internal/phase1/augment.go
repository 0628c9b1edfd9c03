package phase1

import (
	"github.com/gcode-clean/gcodeclean/internal/coord"
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

var xyzLetters = []string{"X", "Y", "Z"}
var ijkLetters = []string{"I", "J", "K"}

func letterAxis(letter string) coord.Axis {
	switch letter {
	case "X", "I":
		return coord.X
	case "Y", "J":
		return coord.Y
	default:
		return coord.Z
	}
}

// Augmenter carries forward X/Y/Z and I/J/K values so every motion line
// becomes self-describing (§4.2.3).
type Augmenter struct {
	prevXYZ     coord.Coord
	prevIJ      coord.Coord
	prevK       coord.Coord
	kEverSeen   bool
	prevCommand token.Token
	haveCommand bool
}

// NewAugmenter creates an augmenter with no carried state.
func NewAugmenter() *Augmenter { return &Augmenter{} }

func extractCoord(l gline.Line, letters []string) (coord.Coord, bool) {
	var c coord.Coord
	found := false
	for _, ltr := range letters {
		if t, ok := l.Find(ltr); ok {
			c = c.With(letterAxis(ltr), t.Number)
			found = true
		}
	}
	return c, found
}

func coordTokens(c coord.Coord, letters []string) []token.Token {
	var out []token.Token
	for _, ltr := range letters {
		axis := letterAxis(ltr)
		if !c.Has(axis) {
			continue
		}
		out = append(out, token.Token{Source: ltr + c.Get(axis).String(), Letter: ltr, Number: c.Get(axis), HasNumber: true, Kind: token.KindArgument})
	}
	return out
}

// Next augments one Phase-1 single-command line. Non-motion-argument lines
// pass through unchanged.
func (a *Augmenter) Next(l gline.Line) gline.Line {
	xyz, hasXYZ := extractCoord(l, xyzLetters)
	ij, hasIJ := extractCoord(l, []string{"I", "J"})
	k, hasK := l.Find("K")
	hasIJK := hasIJ || hasK

	if !hasXYZ && !hasIJK {
		return l
	}

	if hasK {
		a.kEverSeen = true
	}

	cmd, hasCmd := l.MotionCommand()
	if hasCmd {
		a.prevCommand = cmd
		a.haveCommand = true
	}

	a.prevXYZ = coord.Merge(a.prevXYZ, xyz, true)
	if hasIJ {
		a.prevIJ = coord.Merge(a.prevIJ, ij, true)
	}
	if hasK {
		a.prevK = a.prevK.With(coord.Z, k.Number)
	}

	out := l.Without("X", "Y", "Z", "I", "J", "K")
	if !hasCmd && a.haveCommand {
		out = gline.New(append([]token.Token{a.prevCommand}, out.Tokens...))
	}

	out = out.Append(coordTokens(a.prevXYZ, xyzLetters)...)
	if a.kEverSeen {
		ijk := coord.Merge(a.prevIJ, a.prevK, false)
		out = out.Append(coordTokens(ijk, ijkLetters)...)
	} else {
		out = out.Append(coordTokens(a.prevIJ, []string{"I", "J"})...)
	}
	return out
}
