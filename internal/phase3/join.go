package phase3

import "github.com/gcode-clean/gcodeclean/internal/gline"

// StripLineNumbers removes the leading N token from every line, unless
// keep is true.
func StripLineNumbers(lines []gline.Line, keep bool) []gline.Line {
	if keep {
		return lines
	}
	out := make([]gline.Line, 0, len(lines))
	for _, l := range lines {
		if len(l.Tokens) > 0 && l.Tokens[0].IsLineNumber() {
			out = append(out, gline.New(l.Tokens[1:]))
			continue
		}
		out = append(out, l)
	}
	return out
}

// Join renders lines to text with sep, suppressing leading blank lines and
// collapsing runs of two or more blank lines to one (§4.5.3).
func Join(lines []gline.Line, sep string) []string {
	var out []string
	started := false
	blankRun := 0
	for _, l := range lines {
		text := l.Join(sep)
		if text == "" {
			if !started {
				continue
			}
			blankRun++
			if blankRun > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		started = true
		blankRun = 0
		out = append(out, text)
	}
	return out
}
