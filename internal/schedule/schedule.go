// Package schedule decides when the next content refresh is due.
package schedule

import "time"

// Scheduler anchors the periodic refresh to a reference instant that only
// ever moves forward in whole interval steps. When a cycle overruns, the next
// few due-checks fire back-to-back to catch up instead of letting the whole
// schedule slip later.
type Scheduler struct {
	reference time.Time
}

// New returns a scheduler anchored at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{reference: start}
}

// Due reports whether a refresh should run. A true result must be followed by
// a call to Advance.
func (s *Scheduler) Due(now time.Time, interval time.Duration) bool {
	return now.Sub(s.reference) >= interval
}

// Advance moves the reference one interval forward. It deliberately does not
// snap to the current time: that would accumulate drift whenever a refresh
// takes longer than the interval.
func (s *Scheduler) Advance(interval time.Duration) {
	s.reference = s.reference.Add(interval)
}

// PollTimeout returns how long the event wait may block without delaying a
// pending refresh by more than cap past its due time.
func (s *Scheduler) PollTimeout(now time.Time, interval, cap time.Duration) time.Duration {
	remaining := interval - now.Sub(s.reference)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > cap {
		remaining = cap
	}
	return remaining
}

// Reference exposes the current anchor instant.
func (s *Scheduler) Reference() time.Time {
	return s.reference
}
