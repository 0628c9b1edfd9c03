package phase3

import (
	"testing"

	"github.com/gcode-clean/gcodeclean/internal/gline"
)

func TestStripLineNumbersRemovesLeadingN(t *testing.T) {
	lines := []gline.Line{gline.FromRaw("N10 G1 X1")}
	out := StripLineNumbers(lines, false)
	if _, ok := out[0].Find("N"); ok {
		t.Error("N should be stripped")
	}
	if out[0].String() != "G1 X1" {
		t.Errorf("got %q, want 'G1 X1'", out[0].String())
	}
}

func TestStripLineNumbersKeepsWhenRequested(t *testing.T) {
	lines := []gline.Line{gline.FromRaw("N10 G1 X1")}
	out := StripLineNumbers(lines, true)
	if _, ok := out[0].Find("N"); !ok {
		t.Error("N should be kept when keep=true")
	}
}

func TestJoinSuppressesLeadingBlanksAndCollapsesRuns(t *testing.T) {
	lines := []gline.Line{
		{},
		{},
		gline.FromRaw("G1 X1"),
		{},
		{},
		gline.FromRaw("G1 X2"),
	}
	out := Join(lines, " ")
	want := []string{"G1 X1", "", "G1 X2"}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestJoinUsesHardSeparatorWhenEmpty(t *testing.T) {
	lines := []gline.Line{gline.FromRaw("G1 X1 Y2")}
	out := Join(lines, "")
	if out[0] != "G1X1Y2" {
		t.Errorf("got %q, want 'G1X1Y2'", out[0])
	}
}
