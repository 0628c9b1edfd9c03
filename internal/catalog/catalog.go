// Package catalog loads the token-definition JSON document (§6): the
// external collaborator that drives Phase-3 annotation. Missing keys are
// non-fatal; a missing or malformed file is a typed, recoverable error.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalogue is the two-level token-definition document: replacements maps a
// token source to a map of context variables it sets; tokenDefs maps a
// token source or bare letter to a display template.
type Catalogue struct {
	Replacements map[string]map[string]string `json:"replacements"`
	TokenDefs    map[string]string             `json:"tokenDefs"`
}

// LoadError reports a catalogue file that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Empty returns a catalogue with no entries, used when annotation is
// disabled or the caller chooses to proceed after a LoadError (§7).
func Empty() *Catalogue {
	return &Catalogue{Replacements: map[string]map[string]string{}, TokenDefs: map[string]string{}}
}

// Load reads and parses a catalogue document from path.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	var c Catalogue
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if c.Replacements == nil {
		c.Replacements = map[string]map[string]string{}
	}
	if c.TokenDefs == nil {
		c.TokenDefs = map[string]string{}
	}
	return &c, nil
}
