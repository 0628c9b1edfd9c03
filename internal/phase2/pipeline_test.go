package phase2

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
)

func TestRunWiresAllPassesInOrder(t *testing.T) {
	raw := []string{
		"G1 X0 Y0 Z0",
		"G1 X5 Y0 Z0",
		"G1 X10 Y0 Z0",
		"G2 X15 Y5 Z0 R5",
	}
	var lines []gline.Line
	for _, r := range raw {
		lines = append(lines, gline.FromRaw(r))
	}

	out := Run(lines, modal.New(), Config{
		Tolerance:    tol(),
		ArcTolerance: tol(),
		ZClamp:       decimal.NewFromInt(3),
	})
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
	if len(out) >= len(lines) {
		t.Errorf("expected dedup to reduce the colinear run, got %d lines (input had %d)", len(out), len(lines))
	}
}
