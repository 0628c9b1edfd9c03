package phase3

import (
	"regexp"
	"strings"

	"github.com/gcode-clean/gcodeclean/internal/catalog"
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/token"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Annotator renders a trailing `(a, b, ...)` comment for each non-trivial
// line from a token-definition catalogue (§4.5.2), suppressing the comment
// when its letter sequence repeats the previous emitted one.
type Annotator struct {
	cat          *catalog.Catalogue
	context      map[string]string
	prevSequence string
	haveSequence bool
}

// NewAnnotator creates an annotator against the given catalogue.
func NewAnnotator(cat *catalog.Catalogue) *Annotator {
	return &Annotator{cat: cat, context: map[string]string{}}
}

func (a *Annotator) render(t token.Token) (string, bool) {
	if repl, ok := a.cat.Replacements[t.Source]; ok {
		for k, v := range repl {
			a.context[k] = v
		}
	}

	template, ok := a.cat.TokenDefs[t.Source]
	if !ok && t.HasNumber && t.Letter != "" {
		if byLetter, found := a.cat.TokenDefs[t.Letter]; found {
			template, ok = byLetter, true
			a.context[t.Letter+"value"] = t.Number.String()
		}
	}
	if !ok {
		return "", false
	}

	out := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		key := m[1 : len(m)-1]
		if v, found := a.context[key]; found {
			return v
		}
		return m
	})
	return out, true
}

// Next annotates one line. Lines carrying no command, code or argument
// content pass through untouched.
func (a *Annotator) Next(l gline.Line) gline.Line {
	if l.IsNotCommandCodeOrArguments() {
		return l
	}

	var parts []string
	var seq strings.Builder
	for _, t := range l.Tokens {
		if t.IsComment() || t.IsLineNumber() {
			continue
		}
		seq.WriteString(t.Letter)
		if text, ok := a.render(t); ok {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return l
	}

	sequence := seq.String()
	if a.haveSequence && sequence == a.prevSequence {
		return l
	}
	a.prevSequence = sequence
	a.haveSequence = true

	comment := "(" + strings.Join(parts, ", ") + ")"
	return l.Append(token.Token{Source: comment, Kind: token.KindComment})
}
