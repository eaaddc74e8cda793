package keymap

import "github.com/dshills/wingkey/internal/key"

// Reference matrix dimensions.
const (
	DefaultRows = 10
	DefaultCols = 14
)

// Default returns the compiled-in layout for the reference 10x14
// command-wing board: Ctrl/Alt command chords on the left hand,
// keypad cluster and function keys on the right, one physical Shift.
func Default() *Table {
	const (
		ctrl = key.ModCtrl
		alt  = key.ModAlt
	)
	e := key.Empty()

	t := New(DefaultRows, DefaultCols)

	t.SetRow(0,
		key.Chord('p', alt), key.Chord('n', alt), key.Chord('h', alt), key.Chord('o', ctrl), key.Chord('u', ctrl),
	)
	t.SetRow(1,
		key.Chord('f', alt), key.Chord('u', alt), key.Chord('g', alt), key.Chord('m', ctrl), key.Chord('c', ctrl),
		key.Special(key.CodeF1), key.Special(key.CodeF2), key.Special(key.CodeF3), key.Special(key.CodeF4), e,
		key.Special(key.CodeF5), key.Special(key.CodeF6), key.Special(key.CodeF7), key.Special(key.CodeF8),
	)
	t.SetRow(2,
		key.Chord('f', alt), key.Chord('d', alt), key.Chord('b', alt), key.Chord('d', ctrl), key.Chord('l', ctrl),
		key.Special(key.CodeInsert), key.Special(key.CodeHome), key.Special(key.CodePageUp), key.Special(key.CodeF12), e,
		key.Special(key.CodeDelete), key.Special(key.CodeEnd), key.Special(key.CodePageDown), key.Special(key.CodeKPPlus),
	)
	t.SetRow(3,
		e, e, key.Chord('w', alt), key.Chord('s', ctrl), key.Chord('h', ctrl),
	)
	t.SetRow(4,
		e, e, key.Chord('v', alt), key.Chord('e', ctrl), key.Chord('z', ctrl),
		key.Chord('r', alt), key.Chord('k', alt), key.Chord('z', alt), e, key.Chord('j', alt),
		e, key.Chord('l', alt), key.Chord('.', alt), key.Chord(',', alt),
	)
	t.SetRow(5,
		e, e, key.Chord('[', alt), key.Chord('f', ctrl), key.Chord('n', ctrl), key.Chord('g', ctrl),
		e, key.Base('7'), key.Base('8'), key.Base('9'), key.Chord('=', alt), e, key.Chord('o', alt), e,
	)
	t.SetRow(6,
		e, e, key.Chord(']', alt), key.Chord('p', ctrl), key.Chord('q', ctrl), key.Chord('w', ctrl),
		e, key.Base('4'), key.Base('5'), key.Base('6'), key.Chord('t', alt),
	)
	t.SetRow(7,
		e, key.Special(key.CodeKPAsterisk), e, e, e, e, e,
		key.Base('1'), key.Base('2'), key.Base('3'), key.Base('-'),
	)
	t.SetRow(8,
		e, key.Base(']'), key.Chord('\'', alt), key.Chord('x', ctrl), key.Chord('a', ctrl), key.Chord('j', ctrl),
		e, key.Base('0'), key.Base('.'), key.Chord('8', alt), key.Chord('2', alt), e, key.Special(key.CodeEscape), e,
	)
	t.SetRow(9,
		e, key.Base('['), key.Chord(';', alt), key.Chord('b', ctrl), e, key.Chord('s', alt),
		e, key.Mod(key.ModShift), key.Chord('/', ctrl), e, key.Special(key.CodeEnter), e,
		key.SpecialChord(key.CodeBackspace, alt), key.Chord('y', alt),
	)

	return t
}
