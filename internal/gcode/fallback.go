package gcode

import (
	"fmt"
	"strings"

	"github.com/256dpi/gcode"
)

// DescribeLine renders a best-effort human-readable description of a single
// raw line, for diagnostics reporting when the hard-core tokeniser (§4.1 of
// the specification) flags a line invalid or drops a malformed token. This
// leans on the teacher's own single-line parser (256dpi/gcode.ParseLine)
// rather than reusing internal/token, on purpose: the point is an
// independent, looser read of the line good enough to show the user what
// the offending content looks like, not to duplicate the strict tokeniser.
func DescribeLine(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "(blank line)"
	}

	parsed, err := gcode.ParseLine(trimmed)
	if err != nil {
		return fmt.Sprintf("unparseable line: %q", raw)
	}

	if len(parsed.Codes) == 0 && parsed.Comment != "" {
		return fmt.Sprintf("comment: %s", parsed.Comment)
	}

	var parts []string
	for _, code := range parsed.Codes {
		parts = append(parts, fmt.Sprintf("%s%g", code.Letter, code.Value))
	}
	desc := strings.Join(parts, " ")
	if parsed.Comment != "" {
		desc += " (" + parsed.Comment + ")"
	}
	if desc == "" {
		return fmt.Sprintf("unrecognised content: %q", raw)
	}
	return desc
}
