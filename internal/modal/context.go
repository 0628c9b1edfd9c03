// Package modal implements the Context modal-state container (§3): an
// ordered sequence of Lines pinned to modal groups, tracking which have
// already been emitted and what the "current" setting of each group is.
package modal

import (
	"github.com/gcode-clean/gcodeclean/internal/gline"
)

// Group identifies one of the mutually-exclusive modal groups tracked by a
// Context.
type Group int

const (
	GroupUnits Group = iota
	GroupDistance
	GroupFeedRateMode
	GroupPlane
	GroupCutterComp
	GroupLengthComp
	GroupCoordSystem
	GroupSpindle
	GroupCoolant
	GroupTool
	GroupMotion
	GroupPathControl
	GroupRetractMode
	GroupOverrides
)

// CanonicalPreambleOrder is the fixed group order of §4.3's canonical
// preamble: units, distance, feed-mode, plane, cutter-comp, length-comp,
// coord-system, spindle.
var CanonicalPreambleOrder = []Group{
	GroupUnits, GroupDistance, GroupFeedRateMode, GroupPlane,
	GroupCutterComp, GroupLengthComp, GroupCoordSystem, GroupSpindle,
}

// GroupFor returns the modal group a line's command/code token belongs to,
// if any.
func GroupFor(l gline.Line) (Group, bool) {
	for _, t := range l.Tokens {
		if t.Letter == "T" && t.IsCode() {
			return GroupTool, true
		}
		if !t.IsCommand() || !t.HasNumber {
			continue
		}
		switch t.Letter {
		case "G":
			switch t.Number.String() {
			case "17", "18", "19":
				return GroupPlane, true
			case "90", "91":
				return GroupDistance, true
			case "93", "94":
				return GroupFeedRateMode, true
			case "20", "21":
				return GroupUnits, true
			case "40", "41", "42":
				return GroupCutterComp, true
			case "43", "49":
				return GroupLengthComp, true
			case "54", "55", "56", "57", "58", "59", "59.1", "59.2", "59.3":
				return GroupCoordSystem, true
			case "61", "61.1", "64":
				return GroupPathControl, true
			case "98", "99":
				return GroupRetractMode, true
			case "0", "1", "2", "3", "80", "81", "82", "83", "84", "85", "86", "87", "88", "89":
				return GroupMotion, true
			}
		case "M":
			switch t.Number.String() {
			case "3", "4", "5":
				return GroupSpindle, true
			case "7", "8", "9":
				return GroupCoolant, true
			case "48", "49":
				return GroupOverrides, true
			}
		}
	}
	return 0, false
}

type record struct {
	line   gline.Line
	output bool
}

// Context is an ordered sequence of recorded Lines pinned to modal groups.
type Context struct {
	ordered []*record
	latest  map[Group]gline.Line
}

// New creates an empty modal Context.
func New() *Context {
	return &Context{latest: make(map[Group]gline.Line)}
}

// Update records line, and — unless onlyIfUnset is true and a value is
// already recorded for the touched modal group — updates that group's
// current setting.
func (c *Context) Update(l gline.Line, onlyIfUnset bool) {
	if g, ok := GroupFor(l); ok {
		_, already := c.latest[g]
		if !(onlyIfUnset && already) {
			c.latest[g] = l
		}
	}
	c.ordered = append(c.ordered, &record{line: l})
}

// NonOutputLines returns every recorded line not yet flagged as output, in
// the order they were recorded.
func (c *Context) NonOutputLines() []gline.Line {
	var out []gline.Line
	for _, r := range c.ordered {
		if !r.output {
			out = append(out, r.line)
		}
	}
	return out
}

// FlagAllAsOutput marks every recorded line as having been emitted.
func (c *Context) FlagAllAsOutput() {
	for _, r := range c.ordered {
		r.output = true
	}
}

// GetModalState returns the current recorded line for a modal group.
func (c *Context) GetModalState(g Group) (gline.Line, bool) {
	l, ok := c.latest[g]
	return l, ok
}

// GetLengthUnits returns "in" when G20 is the active units setting,
// otherwise "mm" (the default absent any units command).
func (c *Context) GetLengthUnits() string {
	if l, ok := c.latest[GroupUnits]; ok {
		if t, found := l.Find("G"); found && t.HasNumber && t.Number.String() == "20" {
			return "in"
		}
	}
	return "mm"
}

// ToolName returns the current tool code's textual form ("T1", ...), or ""
// if no tool has been selected yet.
func (c *Context) ToolName() string {
	if l, ok := c.latest[GroupTool]; ok {
		if t, found := l.Find("T"); found {
			return t.String()
		}
	}
	return ""
}
