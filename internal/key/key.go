package key

import "fmt"

// Code identifies a key to the output sink. Printable keys carry their
// ASCII value; non-printable keys use the extended range below. The
// scanning core never interprets codes beyond passing them through.
type Code uint16

// CodeNone is the zero Code; it is never emitted.
const CodeNone Code = 0

// extendedBase keeps non-ASCII codes clear of the ASCII range so the
// two never collide in a Code value.
const extendedBase Code = 0xF000

// Extended key codes.
const (
	CodeEnter Code = extendedBase + iota
	CodeEscape
	CodeBackspace
	CodeTab
	CodeInsert
	CodeDelete
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeKPPlus
	CodeKPMinus
	CodeKPAsterisk
	CodeKPSlash
	CodeKPDot
	CodeKPEnter
)

// Char returns the Code for a printable ASCII character.
func Char(r rune) Code {
	return Code(r)
}

// IsASCII returns true if the code is a printable ASCII character.
func (c Code) IsASCII() bool {
	return c >= 0x20 && c < 0x7F
}

// IsExtended returns true if the code is in the extended range.
func (c Code) IsExtended() bool {
	return c >= extendedBase
}

// String returns a readable name for the code.
func (c Code) String() string {
	if c.IsASCII() {
		return string(rune(c))
	}
	switch c {
	case CodeNone:
		return "None"
	case CodeEnter:
		return "Enter"
	case CodeEscape:
		return "Esc"
	case CodeBackspace:
		return "BS"
	case CodeTab:
		return "Tab"
	case CodeInsert:
		return "Ins"
	case CodeDelete:
		return "Del"
	case CodeHome:
		return "Home"
	case CodeEnd:
		return "End"
	case CodePageUp:
		return "PgUp"
	case CodePageDown:
		return "PgDn"
	case CodeUp:
		return "Up"
	case CodeDown:
		return "Down"
	case CodeLeft:
		return "Left"
	case CodeRight:
		return "Right"
	case CodeKPPlus:
		return "KP+"
	case CodeKPMinus:
		return "KP-"
	case CodeKPAsterisk:
		return "KP*"
	case CodeKPSlash:
		return "KP/"
	case CodeKPDot:
		return "KP."
	case CodeKPEnter:
		return "KPEnter"
	}
	if c >= CodeF1 && c <= CodeF12 {
		return fmt.Sprintf("F%d", int(c-CodeF1)+1)
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
