package keymap

import (
	"testing"

	"github.com/dshills/wingkey/internal/key"
)

func TestResolveIsTotal(t *testing.T) {
	table := New(2, 3).Set(1, 2, key.Base('x'))

	// Every in-range coordinate resolves without panicking; unset
	// cells are empty.
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			a := table.Resolve(r, c)
			if r == 1 && c == 2 {
				if a.Code != key.Char('x') {
					t.Errorf("Resolve(1,2).Code = %s, want x", a.Code)
				}
				continue
			}
			if !a.IsEmpty() {
				t.Errorf("Resolve(%d,%d) = %s, want empty", r, c, a)
			}
		}
	}

	// Out-of-range coordinates resolve to empty, never an error.
	outOfRange := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {100, 100}}
	for _, rc := range outOfRange {
		if a := table.Resolve(rc[0], rc[1]); !a.IsEmpty() {
			t.Errorf("Resolve(%d,%d) = %s, want empty", rc[0], rc[1], a)
		}
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set out of range should panic")
		}
	}()
	New(2, 2).Set(2, 0, key.Base('a'))
}

func TestSetRowTooWidePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetRow with too many actions should panic")
		}
	}()
	New(2, 2).SetRow(0, key.Base('a'), key.Base('b'), key.Base('c'))
}

func TestDefaultLayout(t *testing.T) {
	table := Default()

	if table.Rows() != DefaultRows || table.Cols() != DefaultCols {
		t.Fatalf("Default() is %dx%d, want %dx%d", table.Rows(), table.Cols(), DefaultRows, DefaultCols)
	}

	tests := []struct {
		row, col int
		want     key.Action
	}{
		{0, 0, key.Chord('p', key.ModAlt)},
		{0, 3, key.Chord('o', key.ModCtrl)},
		{0, 13, key.Empty()},
		{1, 0, key.Chord('f', key.ModAlt)},
		{1, 5, key.Special(key.CodeF1)},
		{2, 13, key.Special(key.CodeKPPlus)},
		{5, 7, key.Base('7')},
		{7, 1, key.Special(key.CodeKPAsterisk)},
		{8, 12, key.Special(key.CodeEscape)},
		{9, 7, key.Mod(key.ModShift)},
		{9, 10, key.Special(key.CodeEnter)},
		{9, 12, key.SpecialChord(key.CodeBackspace, key.ModAlt)},
	}

	for _, tt := range tests {
		if got := table.Resolve(tt.row, tt.col); got != tt.want {
			t.Errorf("Resolve(%d,%d) = %s, want %s", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestDefaultLayoutSingleShift(t *testing.T) {
	table := Default()

	shifts := 0
	for r := 0; r < table.Rows(); r++ {
		for c := 0; c < table.Cols(); c++ {
			if a := table.Resolve(r, c); a.Kind == key.KindModifier {
				shifts++
			}
		}
	}
	if shifts != 1 {
		t.Errorf("default layout has %d modifier-only keys, want 1", shifts)
	}
}
