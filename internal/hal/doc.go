// Package hal defines the physical I/O boundary of the scanner: the
// Matrix interface for row-select/column-read wiring and the optional
// pressed-count Indicator. The package also provides Sim, an
// in-memory matrix used by tests and the interactive simulator;
// hardware-free adapters live in subpackages.
package hal
