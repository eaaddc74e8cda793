package sink

import "github.com/dshills/wingkey/internal/key"

// Sink receives the logical key stream produced by the scanner. Codes
// pass through uninterpreted by the core; implementations translate
// them for their transport. Sink calls are assumed to succeed — a
// failing transport is reported out of band, never back into the
// scan cycle.
type Sink interface {
	// Press reports a base key going down.
	Press(code key.Code)

	// Release reports a base key coming up.
	Release(code key.Code)

	// PressModifier asserts a single modifier key.
	PressModifier(mod key.Modifier)

	// ReleaseModifier deasserts a single modifier key.
	ReleaseModifier(mod key.Modifier)

	// ReleaseAll force-releases everything the transport may hold,
	// regardless of what was reported pressed. Safety net.
	ReleaseAll()
}

// Null discards every event.
type Null struct{}

// Press implements Sink.
func (Null) Press(key.Code) {}

// Release implements Sink.
func (Null) Release(key.Code) {}

// PressModifier implements Sink.
func (Null) PressModifier(key.Modifier) {}

// ReleaseModifier implements Sink.
func (Null) ReleaseModifier(key.Modifier) {}

// ReleaseAll implements Sink.
func (Null) ReleaseAll() {}
