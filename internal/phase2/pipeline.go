package phase2

import (
	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
)

// Config bundles the tolerances and switches the §4.4 passes read from the
// configuration surface (§6).
type Config struct {
	Tolerance                   decimal.Decimal
	ArcTolerance                decimal.Decimal
	ZClamp                      decimal.Decimal
	EliminateNeedlessTravelling bool
}

// Run applies the full Phase-2 pipeline in the order the specification
// builds it in: arc-radius-to-center, colinear dedup, linear-to-arc fit,
// then the optional travelling-comment pass.
func Run(lines []gline.Line, ctx *modal.Context, cfg Config) []gline.Line {
	out := RunRadiusConversion(lines)
	out = RunDedupLinear(out, cfg.Tolerance)
	out = DedupLinearToArc(out, cfg.ArcTolerance)
	if cfg.EliminateNeedlessTravelling {
		out = InsertTravellingComments(out, ctx, cfg.ZClamp, cfg.Tolerance)
	}
	return out
}
