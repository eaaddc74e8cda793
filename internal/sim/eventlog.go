package sim

import (
	"fmt"
	"sync"

	"github.com/dshills/wingkey/internal/key"
	"github.com/dshills/wingkey/internal/sink"
)

// EventLog decorates a sink with a bounded in-memory trace of the
// calls passing through it. The simulator renders the trace; every
// call is forwarded to the inner sink unchanged.
type EventLog struct {
	mu    sync.Mutex
	inner sink.Sink
	lines []string
	cap   int
}

// NewEventLog wraps inner with a trace of at most capacity entries.
func NewEventLog(inner sink.Sink, capacity int) *EventLog {
	if inner == nil {
		inner = sink.Null{}
	}
	if capacity <= 0 {
		capacity = 16
	}
	return &EventLog{inner: inner, cap: capacity}
}

// Press implements sink.Sink.
func (l *EventLog) Press(code key.Code) {
	l.add(fmt.Sprintf("press   %s", code))
	l.inner.Press(code)
}

// Release implements sink.Sink.
func (l *EventLog) Release(code key.Code) {
	l.add(fmt.Sprintf("release %s", code))
	l.inner.Release(code)
}

// PressModifier implements sink.Sink.
func (l *EventLog) PressModifier(mod key.Modifier) {
	l.add(fmt.Sprintf("mod+    %s", mod))
	l.inner.PressModifier(mod)
}

// ReleaseModifier implements sink.Sink.
func (l *EventLog) ReleaseModifier(mod key.Modifier) {
	l.add(fmt.Sprintf("mod-    %s", mod))
	l.inner.ReleaseModifier(mod)
}

// ReleaseAll implements sink.Sink.
func (l *EventLog) ReleaseAll() {
	l.add("release-all")
	l.inner.ReleaseAll()
}

// Lines returns a copy of the trace, oldest first.
func (l *EventLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *EventLog) add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if len(l.lines) > l.cap {
		l.lines = l.lines[len(l.lines)-l.cap:]
	}
}
