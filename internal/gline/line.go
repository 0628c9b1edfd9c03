// Package gline implements the Line data model: an ordered sequence of
// classified token.Token values plus the structural predicates the rest of
// the pipeline switches on (§3 of the specification).
package gline

import (
	"strings"

	"github.com/gcode-clean/gcodeclean/internal/token"
)

// Line is an ordered sequence of tokens plus a validity flag. Lines are
// immutable once constructed; phases that "modify" a line build a new one.
type Line struct {
	Tokens  []token.Token
	Valid   bool // false when an N token is present but not first
	Output  bool // has this line already been emitted by the modal context?
}

// New builds a Line from already-tokenised words, applying the N-must-be-first
// structural rule of §3.
func New(tokens []token.Token) Line {
	l := Line{Tokens: tokens, Valid: true}
	for i, t := range tokens {
		if t.IsLineNumber() && i != 0 {
			l.Valid = false
			break
		}
	}
	return l
}

// FromRaw tokenises and classifies one raw text line.
func FromRaw(raw string) Line {
	return New(token.TokeniseLine(raw))
}

// IsFileTerminatorLine reports whether the line holds exactly one "%" token;
// other tokens may share the line (see HasBareTerminatorOnly).
func (l Line) IsFileTerminatorLine() bool {
	count := 0
	for _, t := range l.Tokens {
		if t.IsFileTerminator() {
			count++
		}
	}
	return count == 1
}

// HasBareTerminatorOnly reports the terminator appears exactly once AND no
// other tokens share the line (the well-formed case). A terminator sharing
// its line with other tokens is not flagged by New: Valid reflects only the
// N-must-be-first rule.
func (l Line) HasBareTerminatorOnly() bool {
	return l.IsFileTerminatorLine() && len(l.Tokens) == 1
}

// IsEmpty reports the line carries no tokens at all.
func (l Line) IsEmpty() bool { return len(l.Tokens) == 0 }

// IsAllComment reports every token on the line is a comment.
func (l Line) IsAllComment() bool {
	if len(l.Tokens) == 0 {
		return false
	}
	for _, t := range l.Tokens {
		if !t.IsComment() {
			return false
		}
	}
	return true
}

// IsNotCommandCodeOrArguments reports the line is empty, all-terminator, or
// all-comment — i.e. it carries no command, code, or argument content.
func (l Line) IsNotCommandCodeOrArguments() bool {
	return l.IsEmpty() || l.HasBareTerminatorOnly() || l.IsAllComment()
}

// HasMovementCommand reports the line has at least one argument and at
// least one of G0/G1/G2/G3.
func (l Line) HasMovementCommand() bool {
	hasArg := false
	hasMove := false
	for _, t := range l.Tokens {
		if t.IsArgument() {
			hasArg = true
		}
		if t.IsCommand() && t.Letter == "G" && t.HasNumber {
			switch t.Number.String() {
			case "0", "1", "2", "3":
				hasMove = true
			}
		}
	}
	return hasArg && hasMove
}

// MotionCommand returns the G0/G1/G2/G3 token on the line, if present.
func (l Line) MotionCommand() (token.Token, bool) {
	for _, t := range l.Tokens {
		if t.IsCommand() && t.Letter == "G" && t.HasNumber {
			switch t.Number.String() {
			case "0", "1", "2", "3":
				return t, true
			}
		}
	}
	return token.Token{}, false
}

// Find returns the first token with the given letter.
func (l Line) Find(letter string) (token.Token, bool) {
	for _, t := range l.Tokens {
		if t.Letter == letter {
			return t, true
		}
	}
	return token.Token{}, false
}

// FindAll returns every token with the given letter, in order.
func (l Line) FindAll(letter string) []token.Token {
	var out []token.Token
	for _, t := range l.Tokens {
		if t.Letter == letter {
			out = append(out, t)
		}
	}
	return out
}

// Without returns a copy of the line with every token of the given letter
// removed.
func (l Line) Without(letters ...string) Line {
	drop := make(map[string]bool, len(letters))
	for _, ltr := range letters {
		drop[ltr] = true
	}
	out := make([]token.Token, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		if drop[t.Letter] {
			continue
		}
		out = append(out, t)
	}
	return Line{Tokens: out, Valid: l.Valid, Output: l.Output}
}

// Append returns a copy of the line with the given tokens appended.
func (l Line) Append(tokens ...token.Token) Line {
	out := make([]token.Token, 0, len(l.Tokens)+len(tokens))
	out = append(out, l.Tokens...)
	out = append(out, tokens...)
	return Line{Tokens: out, Valid: l.Valid, Output: l.Output}
}

// CompatibleWith implements the §3 "compatible" relation: same token count,
// same per-position letter codes, identical G/M commands at matching
// positions.
func (l Line) CompatibleWith(o Line) bool {
	if len(l.Tokens) != len(o.Tokens) {
		return false
	}
	for i := range l.Tokens {
		a, b := l.Tokens[i], o.Tokens[i]
		if a.Letter != b.Letter {
			return false
		}
		if (a.IsCommand() || b.IsCommand()) && !a.Equal(b) {
			return false
		}
	}
	return true
}

// Equal reports structural equality: same tokens, in order, per-token Equal.
func (l Line) Equal(o Line) bool {
	if len(l.Tokens) != len(o.Tokens) {
		return false
	}
	for i := range l.Tokens {
		if !l.Tokens[i].Equal(o.Tokens[i]) {
			return false
		}
	}
	return true
}

// Join renders the line's tokens as text using the given separator (the
// empty string for HARD minimisation, a single space otherwise — §4.5.3).
func (l Line) Join(sep string) string {
	parts := make([]string, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, sep)
}

// String renders the line with single-space separators, the canonical form
// used for round-trip identity checks.
func (l Line) String() string {
	return l.Join(" ")
}
