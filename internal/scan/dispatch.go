package scan

import (
	"github.com/dshills/wingkey/internal/hal"
	"github.com/dshills/wingkey/internal/key"
	"github.com/dshills/wingkey/internal/keymap"
	"github.com/dshills/wingkey/internal/logging"
	"github.com/dshills/wingkey/internal/sink"
)

// Dispatcher resolves committed transitions against the keymap and
// emits press/release calls to the sink. Modifiers are asserted
// before their base key on press and dropped after it on release, the
// chord ordering host operating systems expect.
type Dispatcher struct {
	table     *keymap.Table
	mods      *Aggregator
	out       sink.Sink
	indicator hal.Indicator
	log       *logging.Logger
	pressed   int
}

// NewDispatcher creates a dispatcher. indicator may be nil.
func NewDispatcher(table *keymap.Table, mods *Aggregator, out sink.Sink, indicator hal.Indicator, log *logging.Logger) *Dispatcher {
	if indicator == nil {
		indicator = hal.NullIndicator{}
	}
	if log == nil {
		log = logging.NullLogger
	}
	return &Dispatcher{
		table:     table,
		mods:      mods,
		out:       out,
		indicator: indicator,
		log:       log.WithComponent("dispatch"),
	}
}

// HandleTransition routes one committed transition.
func (d *Dispatcher) HandleTransition(t Transition) {
	if t.Pressed {
		d.handlePress(t.Row, t.Col)
	} else {
		d.handleRelease(t.Row, t.Col)
	}
}

// PressedCount returns the number of stable-pressed positions with a
// wired action. It drives the indicator only.
func (d *Dispatcher) PressedCount() int { return d.pressed }

func (d *Dispatcher) handlePress(row, col int) {
	action := d.table.Resolve(row, col)
	if action.IsEmpty() {
		return
	}

	switch action.Kind {
	case key.KindModifier:
		d.mods.Acquire(action.Mods)
		d.log.Debug("press mod r=%d c=%d mods=%s", row, col, action.Mods)
	default:
		if !action.Mods.IsEmpty() {
			d.mods.Acquire(action.Mods)
		}
		d.out.Press(action.Code)
		d.log.Debug("press r=%d c=%d key=%s mods=%s", row, col, action.Code, action.Mods)
	}

	d.pressed++
	if d.pressed == 1 {
		d.indicator.Set(true)
	}
}

func (d *Dispatcher) handleRelease(row, col int) {
	action := d.table.Resolve(row, col)
	if action.IsEmpty() {
		return
	}

	switch action.Kind {
	case key.KindModifier:
		d.mods.Release(action.Mods)
		d.log.Debug("release mod r=%d c=%d mods=%s", row, col, action.Mods)
	default:
		// Base key first, then modifiers, mirroring press order.
		d.out.Release(action.Code)
		if !action.Mods.IsEmpty() {
			d.mods.Release(action.Mods)
		}
		d.log.Debug("release r=%d c=%d key=%s mods=%s", row, col, action.Code, action.Mods)
	}

	if d.pressed > 0 {
		d.pressed--
		if d.pressed == 0 {
			d.indicator.Set(false)
		}
	}
}

// resetPressed zeroes the pressed count and turns the indicator off.
// Called by the release-all safety net after stable state is cleared.
func (d *Dispatcher) resetPressed() {
	d.pressed = 0
	d.indicator.Set(false)
}
