package scan

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dshills/wingkey/internal/hal"
	"github.com/dshills/wingkey/internal/key"
	"github.com/dshills/wingkey/internal/keymap"
)

// testClock is a manually advanced clock for deterministic cycles.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScanner(window time.Duration) (*Scanner, *hal.Sim, *recordSink, *testClock) {
	m := hal.NewSim(keymap.DefaultRows, keymap.DefaultCols)
	rec := &recordSink{}
	clock := &testClock{now: time.Unix(0, 0)}
	s := New(m, keymap.Default(), rec, Config{
		DebounceWindow: window,
		Now:            clock.Now,
	})
	return s, m, rec, clock
}

func TestScannerPressReleaseScenario(t *testing.T) {
	// (1,0) is f+Alt in the default layout. Held 10ms with a 5ms
	// window: exactly one press, modifiers before base key.
	s, m, rec, clock := newTestScanner(5 * time.Millisecond)

	m.SetCell(1, 0, true)
	s.Cycle()
	if len(rec.calls) != 0 {
		t.Fatalf("committed before window: %v", rec.calls)
	}

	clock.Advance(10 * time.Millisecond)
	s.Cycle()
	want := []string{"mod+ Alt", "press f"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("press calls = %v, want %v", rec.calls, want)
	}

	// Still held: no further events.
	clock.Advance(time.Millisecond)
	s.Cycle()
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("extra events while held: %v", rec.calls)
	}

	rec.reset()
	m.SetCell(1, 0, false)
	s.Cycle()
	clock.Advance(10 * time.Millisecond)
	s.Cycle()
	want = []string{"release f", "mod- Alt"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("release calls = %v, want %v", rec.calls, want)
	}
}

func TestScannerConcurrentShiftAndChord(t *testing.T) {
	// (9,7) is the physical Shift, (1,0) is f+Alt. No shared
	// modifier: releasing Shift leaves Alt asserted.
	s, m, rec, clock := newTestScanner(5 * time.Millisecond)

	m.SetCell(9, 7, true)
	m.SetCell(1, 0, true)
	s.Cycle()
	clock.Advance(10 * time.Millisecond)
	s.Cycle()

	rec.reset()
	m.SetCell(9, 7, false)
	s.Cycle()
	clock.Advance(10 * time.Millisecond)
	s.Cycle()

	want := []string{"mod- Shift"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	if got := s.dispatcher.mods.Count(key.ModAlt); got != 1 {
		t.Errorf("Alt count = %d, want 1", got)
	}
}

func TestScannerZeroWindow(t *testing.T) {
	s, m, rec, _ := newTestScanner(0)

	m.SetCell(5, 7, true) // plain '7'
	s.Cycle()
	if want := []string{"press 7"}; !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}

	m.SetCell(5, 7, false)
	s.Cycle()
	if want := []string{"press 7", "release 7"}; !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestScannerReleaseAllIdempotent(t *testing.T) {
	s, _, rec, _ := newTestScanner(5 * time.Millisecond)

	// Nothing held: no key traffic, but the sink safety net fires.
	s.ReleaseAll()
	if want := []string{"release-all"}; !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}

	s.ReleaseAll()
	if want := []string{"release-all", "release-all"}; !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
}

func TestScannerReleaseAllDrainsHeldKeys(t *testing.T) {
	s, m, rec, clock := newTestScanner(5 * time.Millisecond)

	m.SetCell(1, 0, true) // f+Alt
	m.SetCell(9, 7, true) // Shift
	s.Cycle()
	clock.Advance(10 * time.Millisecond)
	s.Cycle()

	rec.reset()
	m.SetCell(1, 0, false)
	m.SetCell(9, 7, false)
	s.ReleaseAll()

	// Every held key released, modifiers cleared, then the
	// unconditional sink release-all.
	if len(rec.calls) == 0 || rec.calls[len(rec.calls)-1] != "release-all" {
		t.Fatalf("calls = %v, want trailing release-all", rec.calls)
	}
	found := map[string]bool{}
	for _, c := range rec.calls {
		found[c] = true
	}
	for _, want := range []string{"release f", "mod- Alt", "mod- Shift"} {
		if !found[want] {
			t.Errorf("calls = %v, missing %q", rec.calls, want)
		}
	}
	if got := s.PressedCount(); got != 0 {
		t.Errorf("PressedCount = %d, want 0", got)
	}
}

func TestScannerRequestReleaseAllConsumedNextCycle(t *testing.T) {
	s, m, rec, clock := newTestScanner(5 * time.Millisecond)

	m.SetCell(5, 7, true) // plain '7'
	s.Cycle()
	clock.Advance(10 * time.Millisecond)
	s.Cycle()

	rec.reset()
	m.SetCell(5, 7, false)
	s.RequestReleaseAll()
	s.Cycle()

	want := []string{"release 7", "release-all"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}

	// The request is one-shot.
	rec.reset()
	clock.Advance(10 * time.Millisecond)
	s.Cycle()
	if len(rec.calls) != 0 {
		t.Errorf("request not consumed: %v", rec.calls)
	}
}

func TestScannerRunStopsOnCancel(t *testing.T) {
	s, _, rec, _ := newTestScanner(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// The loop's final act is the release-all safety net.
	if len(rec.calls) == 0 || rec.calls[len(rec.calls)-1] != "release-all" {
		t.Errorf("calls = %v, want trailing release-all", rec.calls)
	}
}
