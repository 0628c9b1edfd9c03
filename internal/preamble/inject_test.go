package preamble

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/phase1"
)

func markerLines(ctxLines []string) []gline.Line {
	var out []gline.Line
	for _, s := range ctxLines {
		out = append(out, gline.FromRaw(s))
	}
	return out
}

func TestResolveStopsAtCompletionMarker(t *testing.T) {
	lines := markerLines([]string{"G21", "G90"})
	lines = append(lines, gline.FromRaw(phase1.MarkerPreambleCompleted))

	ctx, bodyStart := Resolve(lines)
	if bodyStart != 3 {
		t.Fatalf("bodyStart = %d, want 3 (right after the marker)", bodyStart)
	}
	if ctx.GetLengthUnits() != "mm" {
		t.Errorf("GetLengthUnits() = %q, want mm", ctx.GetLengthUnits())
	}
}

func TestResolveFallsBackToFirstMotionLine(t *testing.T) {
	lines := markerLines([]string{"G21", "G90", "G0 X1 Y2 Z3", "G1 X4"})
	ctx, bodyStart := Resolve(lines)
	if bodyStart != 2 {
		t.Fatalf("bodyStart = %d, want 2 (the first motion line)", bodyStart)
	}
	if ctx.GetLengthUnits() != "mm" {
		t.Errorf("GetLengthUnits() = %q, want mm", ctx.GetLengthUnits())
	}
}

func TestInjectEmitsCanonicalPreambleAndPostamble(t *testing.T) {
	lines := markerLines([]string{"G21", "G90", "G17", "G0 X1 Y2 Z1", "G1 X5 Y5 Z1"})
	out := Inject(lines, decimal.NewFromInt(3))

	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
	if out[0].String() != phase1.MarkerPreambleCompletion {
		t.Errorf("first line should be the preamble-completion marker, got %q", out[0].String())
	}

	last := out[len(out)-1]
	if last.String() != "M30" {
		t.Errorf("last line should be M30, got %q", last.String())
	}
	secondLast := out[len(out)-2]
	if !strings.Contains(secondLast.String(), MarkerPostambleCompleted) {
		t.Errorf("second-to-last line should carry the postamble-completed marker, got %q", secondLast.String())
	}
}

func TestInjectClampsTravelZ(t *testing.T) {
	lines := markerLines([]string{"G21", "G0 X1 Y2 Z0.5", "G1 X5 Y5 Z0.5"})
	out := Inject(lines, decimal.NewFromInt(3))

	var travel gline.Line
	found := false
	for _, l := range out {
		if isTravel(l) {
			if z, ok := l.Find("Z"); ok && z.Number.Equal(decimal.NewFromFloat(0.5)) {
				continue
			}
			travel = l
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one clamped travel line with Z raised to the clamp value")
	}
	z, ok := travel.Find("Z")
	if !ok || !z.Number.Equal(decimal.NewFromInt(3)) {
		t.Errorf("clamped travel Z = %v, want 3", z.Number)
	}
}

func TestInjectLeavesCuttingZUnclamped(t *testing.T) {
	lines := markerLines([]string{"G21", "G1 X5 Y5 Z0.5"})
	out := Inject(lines, decimal.NewFromInt(3))

	for _, l := range out {
		if l.HasMovementCommand() && !isTravel(l) {
			if z, ok := l.Find("Z"); ok && !z.Number.Equal(decimal.NewFromFloat(0.5)) {
				t.Errorf("a cutting move's Z should not be clamped, got %v", z.Number)
			}
		}
	}
}
