package sink

import "github.com/dshills/wingkey/internal/key"

// Linux input event codes for the modifier keys
// (linux/input-event-codes.h).
const (
	keyLeftCtrl  = 29
	keyLeftShift = 42
	keyLeftAlt   = 56
	keyLeftMeta  = 125
)

// asciiKeycodes maps printable ASCII to linux key codes. Only the
// unshifted layer appears here; the layout never emits shifted
// characters directly, it asserts Shift as a modifier instead.
var asciiKeycodes = map[key.Code]int{
	key.Char(' '):  57,
	key.Char('a'):  30,
	key.Char('b'):  48,
	key.Char('c'):  46,
	key.Char('d'):  32,
	key.Char('e'):  18,
	key.Char('f'):  33,
	key.Char('g'):  34,
	key.Char('h'):  35,
	key.Char('i'):  23,
	key.Char('j'):  36,
	key.Char('k'):  37,
	key.Char('l'):  38,
	key.Char('m'):  50,
	key.Char('n'):  49,
	key.Char('o'):  24,
	key.Char('p'):  25,
	key.Char('q'):  16,
	key.Char('r'):  19,
	key.Char('s'):  31,
	key.Char('t'):  20,
	key.Char('u'):  22,
	key.Char('v'):  47,
	key.Char('w'):  17,
	key.Char('x'):  45,
	key.Char('y'):  21,
	key.Char('z'):  44,
	key.Char('1'):  2,
	key.Char('2'):  3,
	key.Char('3'):  4,
	key.Char('4'):  5,
	key.Char('5'):  6,
	key.Char('6'):  7,
	key.Char('7'):  8,
	key.Char('8'):  9,
	key.Char('9'):  10,
	key.Char('0'):  11,
	key.Char('-'):  12,
	key.Char('='):  13,
	key.Char('['):  26,
	key.Char(']'):  27,
	key.Char(';'):  39,
	key.Char('\''): 40,
	key.Char('`'):  41,
	key.Char('\\'): 43,
	key.Char(','):  51,
	key.Char('.'):  52,
	key.Char('/'):  53,
}

// extendedKeycodes maps the extended code range to linux key codes.
var extendedKeycodes = map[key.Code]int{
	key.CodeEnter:      28,
	key.CodeEscape:     1,
	key.CodeBackspace:  14,
	key.CodeTab:        15,
	key.CodeInsert:     110,
	key.CodeDelete:     111,
	key.CodeHome:       102,
	key.CodeEnd:        107,
	key.CodePageUp:     104,
	key.CodePageDown:   109,
	key.CodeUp:         103,
	key.CodeDown:       108,
	key.CodeLeft:       105,
	key.CodeRight:      106,
	key.CodeF1:         59,
	key.CodeF2:         60,
	key.CodeF3:         61,
	key.CodeF4:         62,
	key.CodeF5:         63,
	key.CodeF6:         64,
	key.CodeF7:         65,
	key.CodeF8:         66,
	key.CodeF9:         67,
	key.CodeF10:        68,
	key.CodeF11:        87,
	key.CodeF12:        88,
	key.CodeKPAsterisk: 55,
	key.CodeKPMinus:    74,
	key.CodeKPPlus:     78,
	key.CodeKPDot:      83,
	key.CodeKPSlash:    98,
	key.CodeKPEnter:    96,
}

// linuxKeycode translates a key code to its linux event code.
func linuxKeycode(code key.Code) (int, bool) {
	if kc, ok := asciiKeycodes[code]; ok {
		return kc, true
	}
	kc, ok := extendedKeycodes[code]
	return kc, ok
}

// modifierKeycode translates a single modifier to its linux event code.
func modifierKeycode(mod key.Modifier) (int, bool) {
	switch mod {
	case key.ModCtrl:
		return keyLeftCtrl, true
	case key.ModAlt:
		return keyLeftAlt, true
	case key.ModShift:
		return keyLeftShift, true
	case key.ModMeta:
		return keyLeftMeta, true
	default:
		return 0, false
	}
}
