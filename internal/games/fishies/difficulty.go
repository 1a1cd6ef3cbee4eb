package fishies

import "time"

// Ramp is the built-in difficulty curve: the tick interval shrinks by Step
// every pipe spawn until it reaches Floor.
type Ramp struct {
	Initial time.Duration
	Floor   time.Duration
	Step    time.Duration
}

// DefaultRamp returns the only curve the game ships with: 100ms down to 40ms
// in 10ms steps.
func DefaultRamp() Ramp {
	return Ramp{
		Initial: 100 * time.Millisecond,
		Floor:   40 * time.Millisecond,
		Step:    10 * time.Millisecond,
	}
}

// Next returns the interval after one speed-up.
func (r Ramp) Next(cur time.Duration) time.Duration {
	if cur > r.Floor {
		cur -= r.Step
	}
	if cur < r.Floor {
		cur = r.Floor
	}
	return cur
}

// Reset returns the slowest interval, used by the power-up.
func (r Ramp) Reset() time.Duration {
	return r.Initial
}
