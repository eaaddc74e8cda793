package scan

// Grid is one raw snapshot of the matrix: a boolean per coordinate,
// true while the switch reads closed. The driver reuses a single grid
// across cycles; consumers must not retain it.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an all-released grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Get returns the sample at a coordinate.
func (g *Grid) Get(row, col int) bool {
	return g.cells[row*g.cols+col]
}

// Set stores the sample at a coordinate.
func (g *Grid) Set(row, col int, pressed bool) {
	g.cells[row*g.cols+col] = pressed
}
