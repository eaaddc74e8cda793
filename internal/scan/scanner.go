package scan

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dshills/wingkey/internal/hal"
	"github.com/dshills/wingkey/internal/keymap"
	"github.com/dshills/wingkey/internal/logging"
	"github.com/dshills/wingkey/internal/sink"
)

// Config holds scanner construction parameters.
type Config struct {
	// DebounceWindow is the minimum time a raw sample must hold
	// constant before it commits. Zero commits immediately.
	DebounceWindow time.Duration

	// ScanInterval paces the loop between cycles. A scheduling hint
	// only: zero removes pacing without affecting correctness.
	ScanInterval time.Duration

	// Indicator is the optional pressed-count side output.
	Indicator hal.Indicator

	// Logger receives diagnostics. Nil disables logging.
	Logger *logging.Logger

	// Now overrides the clock, for tests. Nil uses time.Now.
	Now func() time.Time
}

// DefaultConfig returns the reference board's timing: 5ms debounce,
// 1ms scan pacing.
func DefaultConfig() Config {
	return Config{
		DebounceWindow: 5 * time.Millisecond,
		ScanInterval:   time.Millisecond,
	}
}

// Scanner owns the scan/debounce/dispatch pipeline. All mutable state
// is touched only from the goroutine running Run (or calling Cycle);
// other goroutines interact through RequestReleaseAll.
type Scanner struct {
	driver     *Driver
	debouncer  *Debouncer
	dispatcher *Dispatcher
	interval   time.Duration
	now        func() time.Time
	log        *logging.Logger
	releaseReq atomic.Bool
}

// New wires a scanner from matrix wiring, keymap table, and sink.
func New(m hal.Matrix, table *keymap.Table, out sink.Sink, cfg Config) *Scanner {
	log := cfg.Logger
	if log == nil {
		log = logging.NullLogger
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	mods := NewAggregator(out)
	return &Scanner{
		driver:     NewDriver(m),
		debouncer:  NewDebouncer(m.Rows(), m.Cols(), cfg.DebounceWindow),
		dispatcher: NewDispatcher(table, mods, out, cfg.Indicator, log),
		interval:   cfg.ScanInterval,
		now:        now,
		log:        log.WithComponent("scan"),
	}
}

// Cycle runs one complete sweep: raw scan, debounce update, dispatch
// of every committed transition. Run-to-completion; never preempted.
func (s *Scanner) Cycle() {
	if s.releaseReq.CompareAndSwap(true, false) {
		s.releaseAll()
	}

	grid := s.driver.Scan()
	for _, t := range s.debouncer.Update(grid, s.now()) {
		s.dispatcher.HandleTransition(t)
	}
}

// Run loops Cycle with the configured pacing until ctx is done, then
// performs a final release-all so no key outlives the loop.
func (s *Scanner) Run(ctx context.Context) error {
	s.log.Info("scan loop started (window=%v interval=%v)", s.debouncer.Window(), s.interval)

	for {
		select {
		case <-ctx.Done():
			s.releaseAll()
			s.log.Info("scan loop stopped")
			return ctx.Err()
		default:
		}

		s.Cycle()

		if s.interval > 0 {
			timer := time.NewTimer(s.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				s.releaseAll()
				s.log.Info("scan loop stopped")
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}

// RequestReleaseAll asks the pipeline to force-release everything at
// the start of its next cycle. Safe from any goroutine; scan state is
// still mutated only by the pipeline itself.
func (s *Scanner) RequestReleaseAll() {
	s.releaseReq.Store(true)
}

// ReleaseAll force-releases everything immediately. Only for use when
// the scan loop is not running (startup, after Run returns); while
// the loop is live, use RequestReleaseAll.
func (s *Scanner) ReleaseAll() {
	s.releaseAll()
}

// PressedCount returns the number of stable-pressed wired positions.
func (s *Scanner) PressedCount() int {
	return s.dispatcher.PressedCount()
}

// releaseAll walks every stable-pressed cell, dispatches a synthetic
// release for it, forces all modifier counts to zero, and issues an
// unconditional sink ReleaseAll as a safety net against accounting
// drift. Idempotent.
func (s *Scanner) releaseAll() {
	for _, t := range s.debouncer.ForceReleased() {
		s.dispatcher.HandleTransition(t)
	}
	s.dispatcher.mods.ForceClear()
	s.dispatcher.out.ReleaseAll()
	s.dispatcher.resetPressed()
	s.log.Debug("release-all complete")
}
