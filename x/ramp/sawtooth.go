package ramp

// Sawtooth maps a tick count to a position 0, step, 2*step, ... that wraps
// at span. Deriving the position from ticks keeps the sweep speed tied to
// elapsed time rather than to how many frames were actually drawn.
type Sawtooth struct {
	span int
	step int
}

// NewSawtooth returns a sweep over [0, span). span<=0 pins the position at 0;
// step<=0 is coerced to 1.
func NewSawtooth(span, step int) Sawtooth {
	if step <= 0 {
		step = 1
	}
	return Sawtooth{span: span, step: step}
}

// At returns the position after n ticks. Negative n is treated as 0.
func (s Sawtooth) At(n int) int {
	if s.span <= 0 || n <= 0 {
		return 0
	}
	return (n % s.span) * s.step % s.span
}
