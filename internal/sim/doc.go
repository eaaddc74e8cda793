// Package sim provides the interactive terminal simulator: a tcell
// view of the switch matrix backed by hal.Sim, with an EventLog sink
// decorator showing exactly what the scanner emits. Useful for
// exercising layouts and debounce behavior without hardware.
package sim
