package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(start time.Time) (*LoginLimiter, *time.Time) {
	clock := start
	l := NewLoginLimiter()
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLoginLimiterBlocksAfterMaxFailures(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 1; i < MaxFailures; i++ {
		s := l.RecordFailure("user@example.com")
		if s.Blocked {
			t.Fatalf("blocked after %d failures, want unblocked", i)
		}
		if s.Failures != i {
			t.Fatalf("failures = %d, want %d", s.Failures, i)
		}
	}

	s := l.RecordFailure("user@example.com")
	if !s.Blocked {
		t.Fatalf("not blocked after %d failures", MaxFailures)
	}
	if s.RetryIn <= 0 || s.RetryIn > Window {
		t.Errorf("RetryIn = %v, want within (0, %v]", s.RetryIn, Window)
	}
}

func TestLoginLimiterStateWithoutRecording(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	if s := l.State("unknown@example.com"); s.Blocked || s.Failures != 0 {
		t.Errorf("State for unknown key = %+v, want zero", s)
	}

	l.RecordFailure("user@example.com")
	l.RecordFailure("user@example.com")

	s := l.State("user@example.com")
	if s.Blocked {
		t.Error("blocked after 2 failures")
	}
	if s.Failures != 2 {
		t.Errorf("failures = %d, want 2", s.Failures)
	}
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	l, clock := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < MaxFailures; i++ {
		l.RecordFailure("user@example.com")
	}
	if s := l.State("user@example.com"); !s.Blocked {
		t.Fatal("not blocked after max failures")
	}

	*clock = clock.Add(Window)

	if s := l.State("user@example.com"); s.Blocked || s.Failures != 0 {
		t.Errorf("state after window elapsed = %+v, want zero", s)
	}

	// A failure after expiry starts a fresh window.
	s := l.RecordFailure("user@example.com")
	if s.Blocked {
		t.Error("blocked on first failure of new window")
	}
	if s.Failures != 1 {
		t.Errorf("failures = %d, want 1", s.Failures)
	}
}

func TestLoginLimiterClearOnSuccess(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < MaxFailures; i++ {
		l.RecordFailure("user@example.com")
	}
	l.Clear("user@example.com")

	if s := l.State("user@example.com"); s.Blocked || s.Failures != 0 {
		t.Errorf("state after Clear = %+v, want zero", s)
	}
}

func TestLoginLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < MaxFailures; i++ {
		l.RecordFailure("a@example.com")
	}

	if s := l.State("b@example.com"); s.Blocked || s.Failures != 0 {
		t.Errorf("unrelated key affected: %+v", s)
	}
}
