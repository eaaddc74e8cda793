package scan

import "github.com/dshills/wingkey/internal/hal"

// Driver sweeps the physical matrix once per cycle: select each row,
// wait for the signal to settle, read every column, and leave all
// rows undriven afterwards. It is a pure snapshot producer; glitches
// are absorbed downstream by the debouncer, never retried here.
type Driver struct {
	matrix hal.Matrix
	grid   *Grid
}

// NewDriver creates a driver for the given matrix wiring.
func NewDriver(m hal.Matrix) *Driver {
	return &Driver{
		matrix: m,
		grid:   NewGrid(m.Rows(), m.Cols()),
	}
}

// Scan performs one full sweep and returns the snapshot. The grid is
// reused across calls; consumers must not retain it.
func (d *Driver) Scan() *Grid {
	rows, cols := d.grid.Rows(), d.grid.Cols()

	for r := 0; r < rows; r++ {
		d.matrix.SelectRow(r)
		d.matrix.Settle()
		for c := 0; c < cols; c++ {
			d.grid.Set(r, c, d.matrix.ReadColumn(c))
		}
	}
	d.matrix.UnselectRows()

	return d.grid
}
