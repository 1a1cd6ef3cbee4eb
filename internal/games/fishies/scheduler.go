package fishies

import "time"

// ShouldTick decides whether the world advances on this loop iteration.
//
// With background processing on, a tick is due once interval has elapsed
// since last, compared at millisecond resolution. With it off the loop is
// input-driven and every call is due.
func ShouldTick(now, last time.Time, interval time.Duration, background bool) bool {
	if !background {
		return true
	}
	return now.Sub(last).Milliseconds() >= interval.Milliseconds()
}

// Scheduler remembers when the last tick fired.
// Several elapsed intervals still produce a single tick; there is no catch-up.
type Scheduler struct {
	last time.Time
}

// NewScheduler creates a scheduler whose first interval starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{last: start}
}

// Due reports whether a tick should fire now and, if so, restarts the
// interval from now.
func (s *Scheduler) Due(now time.Time, interval time.Duration, background bool) bool {
	if !ShouldTick(now, s.last, interval, background) {
		return false
	}
	s.last = now
	return true
}

// Reset restarts the interval from now without firing.
func (s *Scheduler) Reset(now time.Time) {
	s.last = now
}

// Last returns the time of the last tick.
func (s *Scheduler) Last() time.Time {
	return s.last
}

// Remaining returns how long until the next background tick is due.
// It never returns a negative duration.
func (s *Scheduler) Remaining(now time.Time, interval time.Duration) time.Duration {
	left := interval - now.Sub(s.last)
	if left < 0 {
		return 0
	}
	return left
}
