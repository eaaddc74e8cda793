// Package evdev mirrors a Linux input device onto matrix cells so
// the full scan pipeline can run without GPIO hardware. Bound keys of
// the source device close and open simulated switches; everything
// downstream (debounce, dispatch, sink) behaves exactly as on the
// real board.
package evdev

import (
	"context"
	"fmt"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/dshills/wingkey/internal/hal"
	"github.com/dshills/wingkey/internal/logging"
)

// Coord addresses one matrix cell.
type Coord struct {
	Row int
	Col int
}

// Matrix is a simulated switch matrix driven by a grabbed evdev
// device. It satisfies hal.Matrix through the embedded Sim.
type Matrix struct {
	*hal.Sim
	dev     *evdev.InputDevice
	binding map[uint16]Coord
	log     *logging.Logger
}

// Open grabs the input device at path and binds its keys to matrix
// cells. binding maps linux key codes to coordinates; keys without a
// binding are ignored.
func Open(path string, rows, cols int, binding map[uint16]Coord, log *logging.Logger) (*Matrix, error) {
	if log == nil {
		log = logging.NullLogger
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input device %s: %w", path, err)
	}
	if err := dev.Grab(); err != nil {
		dev.File.Close()
		return nil, fmt.Errorf("grabbing input device %s: %w", path, err)
	}

	return &Matrix{
		Sim:     hal.NewSim(rows, cols),
		dev:     dev,
		binding: binding,
		log:     log.WithComponent("evdev"),
	}, nil
}

// Run mirrors device events into cell state until ctx is done or the
// device read fails.
func (m *Matrix) Run(ctx context.Context) error {
	// ReadOne blocks; closing the device file unblocks it on cancel.
	go func() {
		<-ctx.Done()
		m.dev.File.Close()
	}()

	m.log.Info("mirroring %s", m.dev.Name)

	for {
		ev, err := m.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading input device: %w", err)
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}

		coord, ok := m.binding[ev.Code]
		if !ok {
			continue
		}
		switch ev.Value {
		case 1: // key down
			m.SetCell(coord.Row, coord.Col, true)
		case 0: // key up
			m.SetCell(coord.Row, coord.Col, false)
		}
		// Value 2 is autorepeat; the switch is already closed.
	}
}

// Close releases the grab and closes the device.
func (m *Matrix) Close() error {
	_ = m.dev.Release()
	return m.dev.File.Close()
}

// DefaultBinding maps the four left-hand letter/number rows of a
// QWERTY keyboard onto matrix rows 0-3, column by column. A
// development aid covering the command-chord block of the default
// layout.
func DefaultBinding() map[uint16]Coord {
	rows := [][]uint16{
		{2, 3, 4, 5, 6, 7, 8, 9, 10, 11},     // 1..0
		{16, 17, 18, 19, 20, 21, 22, 23, 24}, // q..o
		{30, 31, 32, 33, 34, 35, 36, 37, 38}, // a..l
		{44, 45, 46, 47, 48, 49, 50},         // z..m
	}

	binding := make(map[uint16]Coord)
	for r, codes := range rows {
		for c, code := range codes {
			binding[code] = Coord{Row: r, Col: c}
		}
	}
	return binding
}
