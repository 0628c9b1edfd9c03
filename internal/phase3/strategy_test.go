package phase3

import "testing"

func TestResolveStrategySoftIsDefault(t *testing.T) {
	for _, name := range []string{"", "SOFT"} {
		s := ResolveStrategy(name)
		if s.Name != "SOFT" || s.Separator != " " {
			t.Errorf("ResolveStrategy(%q) = %+v, want SOFT with space separator", name, s)
		}
		if len(s.DedupSelection) != 2 {
			t.Errorf("SOFT dedup selection = %v, want [F Z]", s.DedupSelection)
		}
	}
}

func TestResolveStrategyHardUsesEmptySeparator(t *testing.T) {
	s := ResolveStrategy("HARD")
	if s.Separator != "" {
		t.Errorf("HARD separator = %q, want empty", s.Separator)
	}
	if len(s.DedupSelection) != len(hardLetters) {
		t.Errorf("HARD dedup selection = %v, want every hard letter", s.DedupSelection)
	}
}

func TestResolveStrategyMediumKeepsSpaceSeparator(t *testing.T) {
	s := ResolveStrategy("MEDIUM")
	if s.Separator != " " {
		t.Errorf("MEDIUM separator = %q, want space", s.Separator)
	}
}

func TestResolveStrategyCustomLettersFilteredToHardSet(t *testing.T) {
	s := ResolveStrategy("xyi")
	for _, l := range s.DedupSelection {
		if l == "I" {
			t.Error("I is not in the hard-letter set and should be filtered out")
		}
	}
	found := map[string]bool{}
	for _, l := range s.DedupSelection {
		found[l] = true
	}
	if !found["X"] || !found["Y"] {
		t.Errorf("expected X and Y in custom selection, got %v", s.DedupSelection)
	}
}
