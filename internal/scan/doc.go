// Package scan implements the core scanning pipeline: the matrix
// driver sweep, the per-cell debounce state machine, modifier
// reference counting, and transition dispatch to the output sink.
//
// Control flow per cycle:
//
//	Driver.Scan -> Debouncer.Update -> Dispatcher.HandleTransition -> sink
//
// The pipeline is single-owner: one goroutine runs Scanner.Run (or
// calls Cycle), and all debounce/modifier state is mutated only from
// that context. The sole cross-goroutine entry point is
// RequestReleaseAll, which latches a flag the next cycle consumes.
//
// There are no recoverable errors in the cycle; matrix reads are
// assumed to succeed and a miswired pin manifests as a wrong, not
// exceptional, signal. The release-all safety net is the only
// defensive mechanism.
package scan
