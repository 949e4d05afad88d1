package clock

import "math"

const (
	// DefaultRate is the simulation frequency in Hz.
	DefaultRate = 24.0
	// DefaultCeiling caps a single elapsed-time report so one long stall
	// (backgrounded window, debugger pause) cannot queue seconds of catch-up.
	DefaultCeiling = 0.2
)

// FixedStep decouples the render frame rate from the simulation rate. Feed
// it the elapsed time of every rendered frame; it answers whether a
// simulation step should run this frame.
type FixedStep struct {
	interval float64
	ceiling  float64
	acc      float64
}

// NewFixedStep builds a scheduler stepping at the given frequency.
func NewFixedStep(rate float64) *FixedStep {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &FixedStep{interval: 1 / rate, ceiling: DefaultCeiling}
}

// SetCeiling overrides the per-call elapsed-time clamp (seconds).
func (f *FixedStep) SetCeiling(c float64) {
	if c > 0 {
		f.ceiling = c
	}
}

// Interval returns the fixed step duration in seconds.
func (f *FixedStep) Interval() float64 {
	return f.interval
}

// Tick accumulates elapsed seconds and reports whether one simulation step
// should execute. The accumulator drains by modulo, so however much time
// piled up, a single call yields at most one step; the remainder carries
// forward to keep the long-run rate stable.
func (f *FixedStep) Tick(elapsed float64) bool {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > f.ceiling {
		elapsed = f.ceiling
	}
	f.acc += elapsed
	if f.acc < f.interval {
		return false
	}
	f.acc = math.Mod(f.acc, f.interval)
	return true
}
