package phase3

import "strings"

// hardLetters is the current hard-letter set (§9's Open Question: I/J/K are
// excluded here, matching the current-variant behaviour rather than the
// historical variant that included them).
var hardLetters = []string{"A", "B", "C", "D", "F", "G", "H", "L", "M", "N", "P", "R", "S", "T", "X", "Y", "Z"}

var hardLetterSet = func() map[string]bool {
	m := make(map[string]bool, len(hardLetters))
	for _, l := range hardLetters {
		m[l] = true
	}
	return m
}()

// Strategy bundles the dedup selection and join separator a minimisation
// setting resolves to.
type Strategy struct {
	Name           string
	DedupSelection []string
	Separator      string
}

// ResolveStrategy maps the `minimise` configuration string to a Strategy
// (§4.5.3). An unrecognised string is treated as a user-supplied letter set,
// intersected with the hard-letter set.
func ResolveStrategy(minimise string) Strategy {
	switch minimise {
	case "", "SOFT":
		return Strategy{Name: "SOFT", DedupSelection: []string{"F", "Z"}, Separator: " "}
	case "MEDIUM":
		return Strategy{Name: "MEDIUM", DedupSelection: hardLetters, Separator: " "}
	case "HARD":
		return Strategy{Name: "HARD", DedupSelection: hardLetters, Separator: ""}
	default:
		seen := make(map[string]bool)
		var sel []string
		for _, r := range strings.ToUpper(minimise) {
			l := string(r)
			if hardLetterSet[l] && !seen[l] {
				seen[l] = true
				sel = append(sel, l)
			}
		}
		return Strategy{Name: "CUSTOM", DedupSelection: sel, Separator: " "}
	}
}
