package hal

// Matrix is the electrical boundary of a switch matrix. A scan cycle
// selects one row at a time, waits for the signal to settle, and
// reads every column; a column reads asserted exactly when the switch
// at the selected intersection is closed. Implementations own pin
// polarity and wiring details.
type Matrix interface {
	// Rows returns the number of matrix rows.
	Rows() int

	// Cols returns the number of matrix columns.
	Cols() int

	// SelectRow drives the given row as the active scan row and
	// isolates all others.
	SelectRow(row int)

	// UnselectRows returns every row to a non-driving state.
	UnselectRows()

	// ReadColumn reports whether the column reads asserted for the
	// currently selected row.
	ReadColumn(col int) bool

	// Settle blocks for the wiring's signal propagation interval
	// between row selection and column reads.
	Settle()
}

// Indicator is a side output driven by the pressed-switch count, on
// while at least one switch is held. The reference board wires it to
// the onboard LED. Implementations must tolerate redundant Set calls.
type Indicator interface {
	Set(on bool)
}

// NullIndicator discards all state changes.
type NullIndicator struct{}

// Set implements Indicator.
func (NullIndicator) Set(bool) {}
