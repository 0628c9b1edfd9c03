package phase3

import (
	"github.com/gcode-clean/gcodeclean/internal/catalog"
	"github.com/gcode-clean/gcodeclean/internal/gline"
)

// Config bundles the Phase-3 configuration surface (§6).
type Config struct {
	Annotate    bool
	LineNumbers bool
	Minimise    string
}

// Run applies selected-token dedup, optional annotation, line-number
// stripping and the final join, in that order.
func Run(lines []gline.Line, cfg Config, cat *catalog.Catalogue) []string {
	strategy := ResolveStrategy(cfg.Minimise)
	out := DedupSelected(lines, strategy.DedupSelection)

	if cfg.Annotate {
		ann := NewAnnotator(cat)
		annotated := make([]gline.Line, 0, len(out))
		for _, l := range out {
			annotated = append(annotated, ann.Next(l))
		}
		out = annotated
	}

	out = StripLineNumbers(out, cfg.LineNumbers)
	return Join(out, strategy.Separator)
}
