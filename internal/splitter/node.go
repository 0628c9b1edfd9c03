// Package splitter implements the §4.6 per-cut file splitter: depth-band
// clustering of travelling nodes and materialisation of one output file per
// cut, sharing a common preamble/postamble.
package splitter

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

var travellingPattern = regexp.MustCompile(`^\(\|\|Travelling\|\|(\d+)\|\|(\d+)\|\|(\d+)\|\|(-?[\d.]+)\|\|([^|]*)\|\|>>(G\d+[^>]*)>>(G\d+[^>]*)>>\|\|\)$`)

// Node is one travelling comment, parsed from its wire format (§6).
type Node struct {
	Seq, SubSeq, ID int
	MaxZ            decimal.Decimal
	Tool            string
	Entry, Exit     string
	LineIndex       int
}

// ParseNode parses a single line of text as a travelling comment, returning
// ok=false when it doesn't match the wire format.
func ParseNode(text string, lineIndex int) (Node, bool) {
	m := travellingPattern.FindStringSubmatch(text)
	if m == nil {
		return Node{}, false
	}
	seq, _ := strconv.Atoi(m[1])
	subSeq, _ := strconv.Atoi(m[2])
	id, _ := strconv.Atoi(m[3])
	maxZ, err := decimal.NewFromString(m[4])
	if err != nil {
		return Node{}, false
	}
	return Node{
		Seq: seq, SubSeq: subSeq, ID: id, MaxZ: maxZ,
		Tool: m[5], Entry: m[6], Exit: m[7], LineIndex: lineIndex,
	}, true
}

// Format renders the node back to its wire format, with its current SubSeq.
func (n Node) Format() string {
	return fmt.Sprintf("(||Travelling||%d||%d||%d||%s||%s||>>%s>>%s>>||)",
		n.Seq, n.SubSeq, n.ID, n.MaxZ.StringFixed(3), n.Tool, n.Entry, n.Exit)
}
