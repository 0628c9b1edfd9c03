package token

import "testing"

func TestNewClassifiesWords(t *testing.T) {
	cases := []struct {
		raw      string
		wantKind Kind
		wantLtr  string
	}{
		{"%", KindFileTerminator, ""},
		{"/", KindBlockDelete, ""},
		{"(comment)", KindComment, ""},
		{";trailing", KindComment, ""},
		{"N10", KindLineNumber, "N"},
		{"G1", KindCommand, "G"},
		{"M3", KindCommand, "M"},
		{"F100", KindCode, "F"},
		{"S10000", KindCode, "S"},
		{"T1", KindCode, "T"},
		{"X1.5", KindArgument, "X"},
		{"#100=5", KindParameterSet, "#"},
		{"G999", KindInvalid, "G"},
		{"M999", KindInvalid, "M"},
		{"Q5", KindOther, "Q"},
		{"garbage!!", KindInvalid, ""},
	}
	for _, c := range cases {
		got := New(c.raw)
		if got.Kind != c.wantKind {
			t.Errorf("New(%q).Kind = %v, want %v", c.raw, got.Kind, c.wantKind)
		}
		if c.wantLtr != "" && got.Letter != c.wantLtr {
			t.Errorf("New(%q).Letter = %q, want %q", c.raw, got.Letter, c.wantLtr)
		}
	}
}

func TestTokenEqual(t *testing.T) {
	a := New("G1")
	b := New("G1")
	c := New("G2")
	if !a.Equal(b) {
		t.Error("G1 should equal G1")
	}
	if a.Equal(c) {
		t.Error("G1 should not equal G2")
	}
}

func TestTokenString(t *testing.T) {
	if got := New("x1.5").String(); got != "X1.5" {
		t.Errorf("String() = %q, want X1.5", got)
	}
	if got := New("%").String(); got != "%" {
		t.Errorf("String() = %q, want %%", got)
	}
}

func TestParameterRangeValidation(t *testing.T) {
	if tok := New("#5400"); tok.Kind != KindInvalid {
		t.Errorf("parameter 5400 should be invalid, got %v", tok.Kind)
	}
	if tok := New("#1"); tok.Kind != KindParameterSet {
		t.Errorf("parameter 1 should be valid, got %v", tok.Kind)
	}
}
