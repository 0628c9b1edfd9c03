package phase2

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/modal"
)

func TestInsertTravellingCommentsMarksCuttingRun(t *testing.T) {
	raw := []string{
		"G0 X0 Y0 Z3",
		"G1 X1 Y1 Z0.5",
		"G1 X2 Y2 Z0.5",
		"G0 X5 Y5 Z3",
	}
	var lines []gline.Line
	for _, r := range raw {
		lines = append(lines, gline.FromRaw(r))
	}

	out := InsertTravellingComments(lines, modal.New(), decimal.NewFromInt(3), tol())

	found := false
	for _, l := range out {
		if len(l.Tokens) == 1 && l.Tokens[0].IsComment() && strings.Contains(l.Tokens[0].Source, "Travelling") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Travelling marker after the cutting run, got %v", out)
	}
}

func TestInsertTravellingCommentsCollapsesSameXYTravels(t *testing.T) {
	raw := []string{
		"G0 X0 Y0 Z3",
		"G0 X0 Y0 Z3",
		"G1 X1 Y1 Z0.5",
	}
	var lines []gline.Line
	for _, r := range raw {
		lines = append(lines, gline.FromRaw(r))
	}

	out := InsertTravellingComments(lines, modal.New(), decimal.NewFromInt(3), tol())

	travels := 0
	for _, l := range out {
		if isTravelMove(l, decimal.NewFromInt(3), tol()) {
			travels++
		}
	}
	if travels != 1 {
		t.Errorf("expected consecutive same-XY travels to collapse to 1, got %d", travels)
	}
}
