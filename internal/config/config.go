// Package config resolves the configuration surface (§6) into the typed
// values the pipeline phases consume, clamping out-of-range values the way
// the teacher's optimizer clamps its thresholds — silently within bounds,
// loudly reported to the caller.
package config

import "github.com/shopspring/decimal"

var (
	toleranceMin = decimal.New(5, -5) // 0.00005
	toleranceMax = decimal.New(5, -1) // 0.5
	zClampMin    = decimal.New(2, -2) // 0.02
	zClampMax    = decimal.New(10, 0) // 10.0
)

// Clamp is a value forced into bounds, reported if it moved.
type Clamp struct {
	Name     string
	Original decimal.Decimal
	Value    decimal.Decimal
	Clamped  bool
}

func clamp(name string, v, lo, hi decimal.Decimal) Clamp {
	out := v
	if out.LessThan(lo) {
		out = lo
	} else if out.GreaterThan(hi) {
		out = hi
	}
	return Clamp{Name: name, Original: v, Value: out, Clamped: !out.Equal(v)}
}

// Config is the fully resolved, validated configuration for one run.
type Config struct {
	Annotate                    bool
	LineNumbers                 bool
	Minimise                    string
	Tolerance                   decimal.Decimal
	ArcTolerance                decimal.Decimal
	ZClamp                      decimal.Decimal
	EliminateNeedlessTravelling bool
	TokenDefs                   string
}

// Resolve clamps tolerance/arcTolerance/zClamp into their allowed ranges and
// returns the resolved Config plus every Clamp that fired, so the caller can
// report them via diagnostics.PrintWarning.
func Resolve(raw Config) (Config, []Clamp) {
	var clamps []Clamp
	tol := clamp("tolerance", raw.Tolerance, toleranceMin, toleranceMax)
	arcTol := clamp("arcTolerance", raw.ArcTolerance, toleranceMin, toleranceMax)
	z := clamp("zClamp", raw.ZClamp, zClampMin, zClampMax)
	for _, c := range []Clamp{tol, arcTol, z} {
		if c.Clamped {
			clamps = append(clamps, c)
		}
	}
	raw.Tolerance = tol.Value
	raw.ArcTolerance = arcTol.Value
	raw.ZClamp = z.Value
	return raw, clamps
}

// Default returns the configuration surface's documented defaults.
func Default() Config {
	return Config{
		Minimise:     "SOFT",
		Tolerance:    decimal.New(5, -4),
		ArcTolerance: decimal.New(5, -4),
		ZClamp:       decimal.New(3, 0),
		TokenDefs:    "tokenDefinitions.json",
	}
}
