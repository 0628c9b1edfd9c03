package phase1

import (
	"testing"

	"github.com/gcode-clean/gcodeclean/internal/gline"
)

func TestAugmenterCarriesForwardXYZ(t *testing.T) {
	a := NewAugmenter()
	first := a.Next(gline.FromRaw("G1 X1 Y2 Z3"))
	if first.String() != "G1 X1 Y2 Z3" {
		t.Errorf("first line = %q, want full XYZ unchanged", first.String())
	}

	second := a.Next(gline.FromRaw("G1 X4"))
	if _, ok := second.Find("Y"); !ok {
		t.Error("Y should be carried forward from the previous line")
	}
	if _, ok := second.Find("Z"); !ok {
		t.Error("Z should be carried forward from the previous line")
	}
	y, _ := second.Find("Y")
	if !y.Number.Equal(first.Tokens[2].Number) {
		t.Errorf("carried Y = %v, want %v", y.Number, first.Tokens[2].Number)
	}
}

func TestAugmenterLeavesNonMotionLinesUntouched(t *testing.T) {
	a := NewAugmenter()
	a.Next(gline.FromRaw("G1 X1 Y2 Z3"))
	passthrough := a.Next(gline.FromRaw("M5"))
	if passthrough.String() != "M5" {
		t.Errorf("non-motion-argument line should pass through unchanged, got %q", passthrough.String())
	}
}

func TestAugmenterKOnlyReappearsOnceSeen(t *testing.T) {
	a := NewAugmenter()
	a.Next(gline.FromRaw("G1 X1 Y2 Z3"))
	withoutK := a.Next(gline.FromRaw("G2 X2 Y2 Z3 I1 J1"))
	if _, ok := withoutK.Find("K"); ok {
		t.Error("K should not appear before any arc line has used it")
	}
	withK := a.Next(gline.FromRaw("G2 X3 Y3 Z3 I1 J1 K0"))
	if _, ok := withK.Find("K"); !ok {
		t.Error("K should appear once an arc line has used it")
	}
	next := a.Next(gline.FromRaw("G2 X4 Y4 Z3 I1 J1"))
	if _, ok := next.Find("K"); !ok {
		t.Error("K should keep reappearing for every subsequent arc line once seen")
	}
}
