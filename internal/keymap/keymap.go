package keymap

import (
	"fmt"

	"github.com/dshills/wingkey/internal/key"
)

// Table maps matrix coordinates to key actions. It is a total
// function over its coordinate space: unset or out-of-range
// coordinates resolve to the empty action. Tables are constructed
// once at startup and read-only afterwards.
type Table struct {
	rows    int
	cols    int
	actions []key.Action
}

// New creates an empty table with the given dimensions.
func New(rows, cols int) *Table {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("keymap: invalid dimensions %dx%d", rows, cols))
	}
	return &Table{
		rows:    rows,
		cols:    cols,
		actions: make([]key.Action, rows*cols),
	}
}

// Rows returns the number of matrix rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of matrix columns.
func (t *Table) Cols() int { return t.cols }

// Set assigns the action at a coordinate. Returns the table for
// chaining during construction. Out-of-range coordinates panic;
// layouts are compiled-in data, not user input.
func (t *Table) Set(row, col int, a key.Action) *Table {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		panic(fmt.Sprintf("keymap: coordinate (%d,%d) outside %dx%d", row, col, t.rows, t.cols))
	}
	t.actions[row*t.cols+col] = a
	return t
}

// SetRow assigns actions for a full row starting at column 0.
// Trailing columns keep the empty action.
func (t *Table) SetRow(row int, actions ...key.Action) *Table {
	if len(actions) > t.cols {
		panic(fmt.Sprintf("keymap: row %d has %d actions, table has %d columns", row, len(actions), t.cols))
	}
	for c, a := range actions {
		t.Set(row, c, a)
	}
	return t
}

// Resolve returns the action for a coordinate. Total: out-of-range
// coordinates resolve to the empty action, never an error.
func (t *Table) Resolve(row, col int) key.Action {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return key.Empty()
	}
	return t.actions[row*t.cols+col]
}
