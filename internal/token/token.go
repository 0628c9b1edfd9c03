// Package token implements the lexical layer of the post-processor: turning
// raw G-code text into classified, validated Token values.
package token

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies a Token the way the modal-state machinery and every
// downstream phase expect to switch on it.
type Kind int

const (
	KindOther Kind = iota
	KindFileTerminator
	KindBlockDelete
	KindComment
	KindLineNumber
	KindCommand       // G or M
	KindCode          // F, S, T
	KindArgument      // A B C D H I J K L P R X Y Z
	KindParameterSet  // #
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindFileTerminator:
		return "FileTerminator"
	case KindBlockDelete:
		return "BlockDelete"
	case KindComment:
		return "Comment"
	case KindLineNumber:
		return "LineNumber"
	case KindCommand:
		return "Command"
	case KindCode:
		return "Code"
	case KindArgument:
		return "Argument"
	case KindParameterSet:
		return "ParameterSet"
	case KindInvalid:
		return "Invalid"
	default:
		return "Other"
	}
}

// Token is a single lexical unit of a Line. It is immutable once built.
type Token struct {
	Source        string // textual source: uppercased (inner spaces dropped) for words and parameters, as typed for comments and unparseable text
	Letter        string // uppercase letter code ("" for terminator/block-delete/comment)
	Number        decimal.Decimal
	HasNumber     bool
	Parameter     int // 1..5399 when HasParameter
	HasParameter  bool
	Kind          Kind
	InvalidReason string
}

var argumentLetters = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "H": true, "I": true,
	"J": true, "K": true, "L": true, "P": true, "R": true,
	"X": true, "Y": true, "Z": true,
}

var codeLetters = map[string]bool{"F": true, "S": true, "T": true}

// gCodes is the closed enumeration of admissible G-command values (§3).
var gCodes = buildSet([]string{
	"0", "1", "2", "3", "4", "10", "17", "18", "19", "20", "21", "28", "30",
	"38.2", "40", "41", "42", "43", "49",
	"53", "54", "55", "56", "57", "58", "59", "59.1", "59.2", "59.3",
	"61", "61.1", "64",
	"80", "81", "82", "83", "84", "85", "86", "87", "88", "89",
	"90", "91", "92", "93", "94", "98", "99",
})

// mCodes is the closed enumeration of admissible M-command values (§3).
var mCodes = buildSet([]string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "30", "48", "49", "60",
})

func buildSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			panic(fmt.Sprintf("token: bad literal in enumeration: %s", v))
		}
		set[d.String()] = true
	}
	return set
}

// IsFileTerminator reports whether the token is the bare "%" marker.
func (t Token) IsFileTerminator() bool { return t.Kind == KindFileTerminator }

// IsBlockDelete reports whether the token is the bare "/" marker.
func (t Token) IsBlockDelete() bool { return t.Kind == KindBlockDelete }

// IsComment reports whether the token is a "(...)" or ";..." comment.
func (t Token) IsComment() bool { return t.Kind == KindComment }

// IsLineNumber reports whether the token is an "N" line-number word.
func (t Token) IsLineNumber() bool { return t.Kind == KindLineNumber }

// IsCommand reports whether the token is a G or M command word.
func (t Token) IsCommand() bool { return t.Kind == KindCommand }

// IsCode reports whether the token is an F, S or T code word.
func (t Token) IsCode() bool { return t.Kind == KindCode }

// IsArgument reports whether the token is one of the argument letters.
func (t Token) IsArgument() bool { return t.Kind == KindArgument }

// IsParameterSetting reports whether the token is a "#n" parameter reference.
func (t Token) IsParameterSetting() bool { return t.Kind == KindParameterSet }

// IsOther reports whether the token fell outside every other classification.
func (t Token) IsOther() bool { return t.Kind == KindOther }

// IsValid reports whether the code/number pair is admissible.
func (t Token) IsValid() bool {
	return t.Kind != KindInvalid
}

// IsGCommand reports whether the token is specifically a G word.
func (t Token) IsGCommand(value string) bool {
	return t.Kind == KindCommand && t.Letter == "G" && t.HasNumber && t.Number.String() == value
}

// IsMCommand reports whether the token is specifically an M word.
func (t Token) IsMCommand(value string) bool {
	return t.Kind == KindCommand && t.Letter == "M" && t.HasNumber && t.Number.String() == value
}

// Equal implements the structural equality contract of §3: codes must match,
// and for comments/terminators/block-deletes the comparison is by source or
// by kind alone; otherwise numbers must match too.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind || t.Letter != o.Letter {
		return false
	}
	switch t.Kind {
	case KindComment:
		return t.Source == o.Source
	case KindFileTerminator, KindBlockDelete:
		return true
	case KindParameterSet:
		return t.Parameter == o.Parameter && t.Number.Equal(o.Number)
	default:
		if t.HasNumber != o.HasNumber {
			return false
		}
		if !t.HasNumber {
			return true
		}
		return t.Number.Equal(o.Number)
	}
}

// String reconstructs the canonical textual form of the token (uppercase,
// no inline whitespace between letter and number), used for round-trip
// joins and for the hard/soft minimisation strategies of Phase 3.
func (t Token) String() string {
	switch t.Kind {
	case KindFileTerminator:
		return "%"
	case KindBlockDelete:
		return "/"
	case KindComment:
		return t.Source
	case KindParameterSet:
		if t.HasNumber {
			return fmt.Sprintf("#%d=%s", t.Parameter, t.Number.String())
		}
		return fmt.Sprintf("#%d", t.Parameter)
	case KindInvalid:
		return t.Source
	default:
		if t.HasNumber {
			return t.Letter + t.Number.String()
		}
		return t.Letter
	}
}

var wordPattern = regexp.MustCompile(`(?i)^([A-Z])\s*([+-]?\d+(?:\.\d+)?)$`)
var paramPattern = regexp.MustCompile(`^#(\d+)(?:=([+-]?\d+(?:\.\d+)?))?$`)

// New classifies a single already-isolated word/marker/comment (as produced
// by Lex) into a Token. Malformed numeric words are classified KindInvalid;
// Lex's pattern never isolates one, so they do not reach New through
// TokeniseLine. TokeniseLine keeps every token it builds, so a G/M word
// outside the supported set or an out-of-range parameter stays in the line
// as a KindInvalid token. Malformed N-position handling is a Line-level
// concern, not a Token one.
func New(raw string) Token {
	trimmed := raw
	if trimmed == "%" {
		return Token{Source: raw, Kind: KindFileTerminator}
	}
	if trimmed == "/" {
		return Token{Source: raw, Kind: KindBlockDelete}
	}
	if strings.HasPrefix(trimmed, "(") || strings.HasPrefix(trimmed, ";") {
		return Token{Source: raw, Kind: KindComment}
	}

	if m := paramPattern.FindStringSubmatch(trimmed); m != nil {
		var paramNum int
		fmt.Sscanf(m[1], "%d", &paramNum)
		tok := Token{Source: strings.ToUpper(raw), Letter: "#", Kind: KindParameterSet, Parameter: paramNum, HasParameter: true}
		if m[2] != "" {
			if d, err := decimal.NewFromString(m[2]); err == nil {
				tok.Number = d
				tok.HasNumber = true
			}
		}
		if paramNum < 1 || paramNum > 5399 {
			tok.Kind = KindInvalid
			tok.InvalidReason = "parameter out of range [1,5399]"
		}
		return tok
	}

	m := wordPattern.FindStringSubmatch(strings.TrimSpace(trimmed))
	if m == nil {
		return Token{Source: raw, Kind: KindInvalid, InvalidReason: "unparseable word"}
	}
	letter := strings.ToUpper(m[1])
	numStr := m[2]
	value, err := decimal.NewFromString(numStr)
	if err != nil {
		return Token{Source: raw, Kind: KindInvalid, InvalidReason: "bad decimal"}
	}

	tok := Token{Source: strings.ToUpper(letter + numStr), Letter: letter, Number: value, HasNumber: true}

	switch letter {
	case "N":
		tok.Kind = KindLineNumber
	case "G":
		tok.Kind = KindCommand
		if !gCodes[value.String()] {
			tok.Kind = KindInvalid
			tok.InvalidReason = fmt.Sprintf("unsupported G-code: %s", value.String())
		}
	case "M":
		tok.Kind = KindCommand
		if !mCodes[value.String()] {
			tok.Kind = KindInvalid
			tok.InvalidReason = fmt.Sprintf("unsupported M-code: %s", value.String())
		}
	default:
		if codeLetters[letter] {
			tok.Kind = KindCode
		} else if argumentLetters[letter] {
			tok.Kind = KindArgument
		} else {
			tok.Kind = KindOther
		}
	}
	return tok
}
