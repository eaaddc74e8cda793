package scan

import (
	"github.com/dshills/wingkey/internal/key"
	"github.com/dshills/wingkey/internal/sink"
)

// Aggregator reference-counts demand for each modifier across all
// currently-held actions. A modifier is asserted to the sink exactly
// while its count is above zero: asserted on the 0->1 transition,
// deasserted on 1->0. Counts never go negative; releasing an
// unacquired modifier is a benign no-op.
type Aggregator struct {
	out    sink.Sink
	counts [key.NumModifiers]int
}

// NewAggregator creates an aggregator with all counts at zero.
func NewAggregator(out sink.Sink) *Aggregator {
	return &Aggregator{out: out}
}

// Acquire increments the count of every modifier in mods, asserting
// each one that transitions from zero.
func (a *Aggregator) Acquire(mods key.Modifier) {
	for i, mod := range key.AllModifiers {
		if !mods.Has(mod) {
			continue
		}
		a.counts[i]++
		if a.counts[i] == 1 {
			a.out.PressModifier(mod)
		}
	}
}

// Release decrements the count of every modifier in mods, deasserting
// each one that reaches zero. Counts already at zero stay there.
func (a *Aggregator) Release(mods key.Modifier) {
	for i, mod := range key.AllModifiers {
		if !mods.Has(mod) || a.counts[i] == 0 {
			continue
		}
		a.counts[i]--
		if a.counts[i] == 0 {
			a.out.ReleaseModifier(mod)
		}
	}
}

// ForceClear deasserts every modifier still held and zeroes all
// counts. Used by the release-all safety net.
func (a *Aggregator) ForceClear() {
	for i, mod := range key.AllModifiers {
		if a.counts[i] > 0 {
			a.out.ReleaseModifier(mod)
		}
		a.counts[i] = 0
	}
}

// Count returns the current reference count for a single modifier.
func (a *Aggregator) Count(mod key.Modifier) int {
	i := mod.Index()
	if i < 0 {
		return 0
	}
	return a.counts[i]
}
