package gline

import "testing"

func TestFromRawTokeniseThenJoinRoundTrips(t *testing.T) {
	cases := []string{
		"G1 X1 Y2 Z3 F100",
		"N33 G1 X1 Y2 Z3",
		"G17 G40 G90 G21",
	}
	for _, raw := range cases {
		l := FromRaw(raw)
		if got := l.String(); got != raw {
			t.Errorf("FromRaw(%q).String() = %q, want %q", raw, got, raw)
		}
	}
}

func TestHasMovementCommand(t *testing.T) {
	if !FromRaw("G0 X1 Y2").HasMovementCommand() {
		t.Error("G0 with arguments should be a movement command")
	}
	if FromRaw("G0").HasMovementCommand() {
		t.Error("G0 with no arguments should not be a movement command")
	}
	if FromRaw("G17").HasMovementCommand() {
		t.Error("G17 should not be a movement command")
	}
}

func TestIsNotCommandCodeOrArguments(t *testing.T) {
	if !FromRaw("(comment)").IsNotCommandCodeOrArguments() {
		t.Error("a pure comment line should be classified as non-content")
	}
	if !FromRaw("").IsNotCommandCodeOrArguments() {
		t.Error("an empty line should be classified as non-content")
	}
	if FromRaw("G1 X1").IsNotCommandCodeOrArguments() {
		t.Error("a motion line is content")
	}
}

func TestWithoutAndAppend(t *testing.T) {
	l := FromRaw("G1 X1 Y2 Z3")
	stripped := l.Without("X", "Y")
	if _, ok := stripped.Find("X"); ok {
		t.Error("X should have been removed")
	}
	if _, ok := stripped.Find("Z"); !ok {
		t.Error("Z should survive")
	}
	rebuilt := stripped.Append(l.Tokens[1])
	if _, ok := rebuilt.Find("X"); !ok {
		t.Error("X should be back after Append")
	}
}

func TestCompatibleWith(t *testing.T) {
	a := FromRaw("G1 X1 Y2 Z3")
	b := FromRaw("G1 X4 Y5 Z6")
	c := FromRaw("G0 X4 Y5 Z6")
	if !a.CompatibleWith(b) {
		t.Error("two G1 XYZ lines should be compatible")
	}
	if a.CompatibleWith(c) {
		t.Error("a G1 line and a G0 line should not be compatible")
	}
}

func TestValidNRequiresFirstPosition(t *testing.T) {
	if !FromRaw("N10 G1 X1").Valid {
		t.Error("N in first position should be valid")
	}
	if FromRaw("G1 N10 X1").Valid {
		t.Error("N not in first position should be invalid")
	}
}
