package scan

import "time"

// Transition is one committed state change for a single coordinate.
type Transition struct {
	Row     int
	Col     int
	Pressed bool
}

// Debouncer converts noisy raw samples into stable transitions. Each
// cell tracks the previous raw sample, the committed stable state,
// and the time of the most recent raw change; the stable state
// follows the raw state only after it has held constant for the full
// window, measured from the latest raw flip. A window of zero commits
// every change immediately.
type Debouncer struct {
	rows       int
	cols       int
	window     time.Duration
	rawPrev    []bool
	stable     []bool
	lastChange []time.Time
	scratch    []Transition
}

// NewDebouncer creates a debouncer with all cells released.
func NewDebouncer(rows, cols int, window time.Duration) *Debouncer {
	n := rows * cols
	return &Debouncer{
		rows:       rows,
		cols:       cols,
		window:     window,
		rawPrev:    make([]bool, n),
		stable:     make([]bool, n),
		lastChange: make([]time.Time, n),
	}
}

// Window returns the configured debounce window.
func (d *Debouncer) Window() time.Duration { return d.window }

// Stable returns the committed state of a cell.
func (d *Debouncer) Stable(row, col int) bool {
	return d.stable[row*d.cols+col]
}

// Update feeds one raw snapshot into every cell's state machine and
// returns the transitions that committed this cycle, at most one per
// cell. The returned slice is reused by the next call.
func (d *Debouncer) Update(g *Grid, now time.Time) []Transition {
	out := d.scratch[:0]

	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			i := r*d.cols + c
			raw := g.Get(r, c)

			// Every raw flip restarts the window.
			if raw != d.rawPrev[i] {
				d.rawPrev[i] = raw
				d.lastChange[i] = now
			}

			if d.stable[i] != raw && now.Sub(d.lastChange[i]) >= d.window {
				d.stable[i] = raw
				out = append(out, Transition{Row: r, Col: c, Pressed: raw})
			}
		}
	}

	d.scratch = out
	return out
}

// ForceReleased synthesizes a release for every stable-pressed cell
// and clears its stable state. Raw samples and change timestamps are
// left untouched, so a switch still physically held simply re-commits
// as a fresh press on a later cycle once its window requirement is
// met. The returned slice is reused by the next Update call.
func (d *Debouncer) ForceReleased() []Transition {
	out := d.scratch[:0]

	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			i := r*d.cols + c
			if d.stable[i] {
				d.stable[i] = false
				out = append(out, Transition{Row: r, Col: c, Pressed: false})
			}
		}
	}

	d.scratch = out
	return out
}
