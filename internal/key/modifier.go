package key

import "strings"

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the left Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the left Alt key.
	ModAlt

	// ModShift indicates the left Shift key.
	ModShift

	// ModMeta indicates the Meta key (Cmd/Win).
	ModMeta
)

// AllModifiers lists every individual modifier in assertion order.
// Aggregation code indexes its counters by position in this slice.
var AllModifiers = []Modifier{ModCtrl, ModAlt, ModShift, ModMeta}

// NumModifiers is the number of distinct modifier keys.
const NumModifiers = 4

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Index returns the counter slot for a single modifier, or -1 if m is
// not exactly one of AllModifiers.
func (m Modifier) Index() int {
	for i, mod := range AllModifiers {
		if m == mod {
			return i
		}
	}
	return -1
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ShortString returns a compact representation like "C-A".
func (m Modifier) ShortString() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if m.Has(ModShift) {
		parts = append(parts, "S")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "M")
	}
	return strings.Join(parts, "-")
}
