package key

import "fmt"

// Kind discriminates the three forms a key action can take.
type Kind uint8

const (
	// KindEmpty marks a matrix position with no switch wired.
	KindEmpty Kind = iota

	// KindSimple is a base key with optional chorded modifiers.
	KindSimple

	// KindModifier is a physical modifier key with no base key.
	KindModifier
)

// Action describes what a matrix position does when its switch
// closes. Exactly one Kind applies; actions are immutable values.
type Action struct {
	Kind Kind
	Code Code
	Mods Modifier
}

// Empty returns the action for an unwired position.
func Empty() Action {
	return Action{}
}

// Base returns a plain character key action.
func Base(r rune) Action {
	return Action{Kind: KindSimple, Code: Char(r)}
}

// Special returns a plain extended-code key action.
func Special(c Code) Action {
	return Action{Kind: KindSimple, Code: c}
}

// Chord returns a character key with modifiers held for its duration.
func Chord(r rune, mods Modifier) Action {
	return Action{Kind: KindSimple, Code: Char(r), Mods: mods}
}

// SpecialChord returns an extended-code key with chorded modifiers.
func SpecialChord(c Code, mods Modifier) Action {
	return Action{Kind: KindSimple, Code: c, Mods: mods}
}

// Mod returns a physical modifier key action.
func Mod(mods Modifier) Action {
	return Action{Kind: KindModifier, Mods: mods}
}

// IsEmpty returns true for an unwired position.
func (a Action) IsEmpty() bool {
	return a.Kind == KindEmpty
}

// String returns a readable description, e.g. "f+Alt" or "mod(Shift)".
func (a Action) String() string {
	switch a.Kind {
	case KindEmpty:
		return "empty"
	case KindModifier:
		return fmt.Sprintf("mod(%s)", a.Mods)
	default:
		if a.Mods.IsEmpty() {
			return a.Code.String()
		}
		return fmt.Sprintf("%s+%s", a.Code, a.Mods)
	}
}
