// Package phase3 implements textual minimisation and annotation (§4.5):
// selected-token dedup, catalogue-driven annotation, and the final join.
package phase3

import (
	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

// DedupSelected drops any token whose (letter, value) repeats the carrier's
// current value for that letter, for every letter in selection. The carrier
// for each selected letter starts at zero (§4.5.1).
func DedupSelected(lines []gline.Line, selection []string) []gline.Line {
	carrier := make(map[string]decimal.Decimal, len(selection))
	selected := make(map[string]bool, len(selection))
	for _, ltr := range selection {
		selected[ltr] = true
		carrier[ltr] = decimal.Zero
	}

	out := make([]gline.Line, 0, len(lines))
	for _, l := range lines {
		tokens := make([]token.Token, 0, len(l.Tokens))
		for _, t := range l.Tokens {
			if selected[t.Letter] && t.HasNumber {
				if v, ok := carrier[t.Letter]; ok && v.Equal(t.Number) {
					continue
				}
			}
			tokens = append(tokens, t)
		}
		for _, t := range tokens {
			if selected[t.Letter] && t.HasNumber {
				carrier[t.Letter] = t.Number
			}
		}
		out = append(out, gline.New(tokens))
	}
	return out
}
