package phase3

import (
	"strings"
	"testing"

	"github.com/gcode-clean/gcodeclean/internal/catalog"
	"github.com/gcode-clean/gcodeclean/internal/gline"
)

func TestAnnotatorAppendsCommentFromTemplate(t *testing.T) {
	cat := catalog.Empty()
	cat.TokenDefs["G0"] = "rapid"
	a := NewAnnotator(cat)

	out := a.Next(gline.FromRaw("G0 X1 Y2"))
	last := out.Tokens[len(out.Tokens)-1]
	if !last.IsComment() || !strings.Contains(last.Source, "rapid") {
		t.Errorf("expected an appended comment containing 'rapid', got %q", out.String())
	}
}

func TestAnnotatorSuppressesRepeatedLetterSequence(t *testing.T) {
	cat := catalog.Empty()
	cat.TokenDefs["G0"] = "rapid"
	a := NewAnnotator(cat)

	a.Next(gline.FromRaw("G0 X1 Y2"))
	out := a.Next(gline.FromRaw("G0 X5 Y6"))
	if out.String() != "G0 X5 Y6" {
		t.Errorf("repeated GXY sequence should suppress the comment, got %q", out.String())
	}
}

func TestAnnotatorLeavesBlankLinesAlone(t *testing.T) {
	cat := catalog.Empty()
	a := NewAnnotator(cat)
	out := a.Next(gline.Line{})
	if !out.IsEmpty() {
		t.Errorf("expected the blank line to pass through untouched, got %q", out.String())
	}
}

func TestAnnotatorLetterFallbackInjectsValue(t *testing.T) {
	cat := catalog.Empty()
	cat.TokenDefs["X"] = "x is {Xvalue}"
	a := NewAnnotator(cat)

	out := a.Next(gline.FromRaw("G1 X7"))
	last := out.Tokens[len(out.Tokens)-1]
	if !strings.Contains(last.Source, "x is 7") {
		t.Errorf("expected the letter-fallback template to substitute the value, got %q", last.Source)
	}
}
