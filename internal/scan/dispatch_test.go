package scan

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dshills/wingkey/internal/key"
	"github.com/dshills/wingkey/internal/keymap"
)

// recordSink captures every sink call in order.
type recordSink struct {
	calls []string
}

func (r *recordSink) Press(code key.Code) {
	r.calls = append(r.calls, fmt.Sprintf("press %s", code))
}

func (r *recordSink) Release(code key.Code) {
	r.calls = append(r.calls, fmt.Sprintf("release %s", code))
}

func (r *recordSink) PressModifier(mod key.Modifier) {
	r.calls = append(r.calls, fmt.Sprintf("mod+ %s", mod))
}

func (r *recordSink) ReleaseModifier(mod key.Modifier) {
	r.calls = append(r.calls, fmt.Sprintf("mod- %s", mod))
}

func (r *recordSink) ReleaseAll() {
	r.calls = append(r.calls, "release-all")
}

func (r *recordSink) reset() { r.calls = nil }

// recordIndicator captures indicator state changes.
type recordIndicator struct {
	states []bool
}

func (r *recordIndicator) Set(on bool) { r.states = append(r.states, on) }

// testTable builds a small table exercising all three action kinds:
// (0,0) chord f+Alt, (0,1) plain 7, (1,0) physical Shift, (1,1) empty.
func testTable() *keymap.Table {
	return keymap.New(2, 2).
		Set(0, 0, key.Chord('f', key.ModAlt)).
		Set(0, 1, key.Base('7')).
		Set(1, 0, key.Mod(key.ModShift))
}

func newTestDispatcher() (*Dispatcher, *recordSink, *recordIndicator) {
	rec := &recordSink{}
	ind := &recordIndicator{}
	mods := NewAggregator(rec)
	return NewDispatcher(testTable(), mods, rec, ind, nil), rec, ind
}

func TestDispatchChordOrdering(t *testing.T) {
	d, rec, _ := newTestDispatcher()

	d.HandleTransition(Transition{Row: 0, Col: 0, Pressed: true})
	want := []string{"mod+ Alt", "press f"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("press calls = %v, want %v", rec.calls, want)
	}

	rec.reset()
	d.HandleTransition(Transition{Row: 0, Col: 0, Pressed: false})
	want = []string{"release f", "mod- Alt"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("release calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatchPlainKey(t *testing.T) {
	d, rec, _ := newTestDispatcher()

	d.HandleTransition(Transition{Row: 0, Col: 1, Pressed: true})
	d.HandleTransition(Transition{Row: 0, Col: 1, Pressed: false})

	want := []string{"press 7", "release 7"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatchModifierOnly(t *testing.T) {
	d, rec, _ := newTestDispatcher()

	d.HandleTransition(Transition{Row: 1, Col: 0, Pressed: true})
	d.HandleTransition(Transition{Row: 1, Col: 0, Pressed: false})

	want := []string{"mod+ Shift", "mod- Shift"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDispatchEmptyCellIgnored(t *testing.T) {
	d, rec, ind := newTestDispatcher()

	d.HandleTransition(Transition{Row: 1, Col: 1, Pressed: true})
	d.HandleTransition(Transition{Row: 1, Col: 1, Pressed: false})

	if len(rec.calls) != 0 {
		t.Errorf("empty cell produced calls: %v", rec.calls)
	}
	if len(ind.states) != 0 {
		t.Errorf("empty cell drove the indicator: %v", ind.states)
	}
	if d.PressedCount() != 0 {
		t.Errorf("PressedCount = %d, want 0", d.PressedCount())
	}
}

func TestDispatchIndicatorTracksFirstAndLast(t *testing.T) {
	d, _, ind := newTestDispatcher()

	d.HandleTransition(Transition{Row: 0, Col: 0, Pressed: true})
	d.HandleTransition(Transition{Row: 0, Col: 1, Pressed: true})
	d.HandleTransition(Transition{Row: 0, Col: 0, Pressed: false})
	d.HandleTransition(Transition{Row: 0, Col: 1, Pressed: false})

	// On at the first press, off at the last release, nothing between.
	want := []bool{true, false}
	if !reflect.DeepEqual(ind.states, want) {
		t.Errorf("indicator states = %v, want %v", ind.states, want)
	}
}

func TestDispatchModifierOnlyCountsAsPressed(t *testing.T) {
	d, _, ind := newTestDispatcher()

	// A held physical modifier counts toward "any switch held".
	d.HandleTransition(Transition{Row: 1, Col: 0, Pressed: true})
	if d.PressedCount() != 1 {
		t.Errorf("PressedCount = %d, want 1", d.PressedCount())
	}
	if !reflect.DeepEqual(ind.states, []bool{true}) {
		t.Errorf("indicator states = %v, want [true]", ind.states)
	}
}

func TestDispatchIndependentModifiers(t *testing.T) {
	d, rec, _ := newTestDispatcher()

	// Shift (1,0) and f+Alt (0,0) held concurrently share no
	// modifier; releasing Shift must not touch Alt.
	d.HandleTransition(Transition{Row: 1, Col: 0, Pressed: true})
	d.HandleTransition(Transition{Row: 0, Col: 0, Pressed: true})

	if got := d.mods.Count(key.ModAlt); got != 1 {
		t.Fatalf("Alt count = %d, want 1", got)
	}

	rec.reset()
	d.HandleTransition(Transition{Row: 1, Col: 0, Pressed: false})

	if got := d.mods.Count(key.ModAlt); got != 1 {
		t.Errorf("Alt count after Shift release = %d, want 1", got)
	}
	want := []string{"mod- Shift"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}
