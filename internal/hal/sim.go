package hal

import "sync"

// Sim is an in-memory switch matrix. Cell state is set from any
// goroutine (tests, the interactive simulator, the evdev adapter);
// the scan pipeline reads it through the Matrix interface like any
// other wiring.
type Sim struct {
	mu       sync.Mutex
	rows     int
	cols     int
	cells    []bool
	selected int
}

// NewSim creates a simulated matrix with all switches open.
func NewSim(rows, cols int) *Sim {
	return &Sim{
		rows:     rows,
		cols:     cols,
		cells:    make([]bool, rows*cols),
		selected: -1,
	}
}

// Rows returns the number of matrix rows.
func (s *Sim) Rows() int { return s.rows }

// Cols returns the number of matrix columns.
func (s *Sim) Cols() int { return s.cols }

// SelectRow implements Matrix.
func (s *Sim) SelectRow(row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = row
}

// UnselectRows implements Matrix.
func (s *Sim) UnselectRows() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = -1
}

// ReadColumn implements Matrix. Reads false when no row is selected.
func (s *Sim) ReadColumn(col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 || s.selected >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[s.selected*s.cols+col]
}

// Settle implements Matrix. Simulated signals need no settle time.
func (s *Sim) Settle() {}

// SetCell sets the open/closed state of one switch. Out-of-range
// coordinates are ignored.
func (s *Sim) SetCell(row, col int, pressed bool) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[row*s.cols+col] = pressed
}

// Held reports whether the switch at a coordinate is currently closed.
func (s *Sim) Held(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cells[row*s.cols+col]
}

// Clear opens every switch.
func (s *Sim) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cells {
		s.cells[i] = false
	}
}
