package schedule

import (
	"math/rand"
	"testing"
	"time"
)

func TestDueBeforeAndAfterInterval(t *testing.T) {
	start := time.Unix(1000, 0)
	s := New(start)
	interval := time.Second

	if s.Due(start, interval) {
		t.Error("Refresh due at the anchor instant")
	}
	if s.Due(start.Add(999*time.Millisecond), interval) {
		t.Error("Refresh due before a full interval elapsed")
	}
	if !s.Due(start.Add(time.Second), interval) {
		t.Error("Refresh not due exactly one interval after the anchor")
	}
	if !s.Due(start.Add(5*time.Second), interval) {
		t.Error("Refresh not due long after the anchor")
	}
}

func TestAdvanceStepsByWholeIntervals(t *testing.T) {
	start := time.Unix(0, 0)
	s := New(start)
	interval := 250 * time.Millisecond

	s.Advance(interval)
	s.Advance(interval)
	want := start.Add(2 * interval)
	if !s.Reference().Equal(want) {
		t.Errorf("Reference = %v, want %v", s.Reference(), want)
	}
}

func TestScheduleNeverDrifts(t *testing.T) {
	// However late each check happens, after k Due/Advance pairs the anchor
	// equals start + k*interval.
	start := time.Unix(42, 0)
	interval := time.Second
	s := New(start)
	rng := rand.New(rand.NewSource(7))

	now := start
	advances := 0
	for i := 0; i < 500; i++ {
		// Random forward jumps, including overruns of several intervals.
		now = now.Add(time.Duration(rng.Intn(2500)) * time.Millisecond)
		for s.Due(now, interval) {
			s.Advance(interval)
			advances++
		}
		want := start.Add(time.Duration(advances) * interval)
		if !s.Reference().Equal(want) {
			t.Fatalf("After %d advances reference = %v, want %v", advances, s.Reference(), want)
		}
	}
	if advances == 0 {
		t.Fatal("Expected at least one refresh to fire")
	}
}

func TestCatchUpAfterOverrun(t *testing.T) {
	start := time.Unix(0, 0)
	interval := time.Second
	s := New(start)

	// One refresh cycle took 3.5 intervals; the next checks fire
	// back-to-back until the schedule catches up.
	late := start.Add(3500 * time.Millisecond)
	fired := 0
	for s.Due(late, interval) {
		s.Advance(interval)
		fired++
	}
	if fired != 3 {
		t.Errorf("Expected 3 catch-up refreshes, got %d", fired)
	}
	if got := s.Reference(); !got.Equal(start.Add(3 * time.Second)) {
		t.Errorf("Reference = %v, want %v", got, start.Add(3*time.Second))
	}
}

func TestPollTimeoutBounds(t *testing.T) {
	start := time.Unix(0, 0)
	interval := time.Second
	cap := 100 * time.Millisecond
	s := New(start)

	cases := []struct {
		now  time.Time
		want time.Duration
	}{
		{start, cap},                                  // full interval ahead, capped
		{start.Add(950 * time.Millisecond), 50 * time.Millisecond}, // less than cap remains
		{start.Add(time.Second), 0},                   // due now
		{start.Add(5 * time.Second), 0},               // overdue never goes negative
	}
	for _, tc := range cases {
		if got := s.PollTimeout(tc.now, interval, cap); got != tc.want {
			t.Errorf("PollTimeout(now=%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}
