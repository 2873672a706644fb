// Package ratelimit implements the server-side login failure limiter. The
// request-level IP limits live in the route middleware; this covers the
// per-account axis: five failed logins within a fifteen-minute window from the
// first failure block further attempts until the window elapses.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// MaxFailures is the number of failed attempts that triggers a block.
	MaxFailures = 5
	// Window is the rolling window measured from the first failure.
	Window = 15 * time.Minute
)

// State reports the limiter's view of one account key.
type State struct {
	Blocked   bool
	Failures  int
	RetryIn   time.Duration
}

type entry struct {
	count       int
	windowStart time.Time
}

// LoginLimiter tracks failed login attempts per account key in memory.
// Single-instance deployments only; counters reset on restart, which is
// acceptable for an advisory throttle layered under the IP limiter.
type LoginLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// RecordFailure registers one failed attempt for key and returns the
// resulting state. A failure after the window has elapsed starts a new window
// with a count of one.
func (l *LoginLimiter) RecordFailure(key string) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) >= Window {
		e = &entry{count: 1, windowStart: now}
		l.entries[key] = e
	} else {
		e.count++
	}
	return l.stateLocked(e, now)
}

// State reports the current state for key without recording anything.
func (l *LoginLimiter) State(key string) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return State{}
	}
	now := l.now()
	if now.Sub(e.windowStart) >= Window {
		return State{}
	}
	return l.stateLocked(e, now)
}

// Clear forgets all failures for key. Called on successful login.
func (l *LoginLimiter) Clear(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

func (l *LoginLimiter) stateLocked(e *entry, now time.Time) State {
	s := State{Failures: e.count}
	if e.count >= MaxFailures {
		s.Blocked = true
		s.RetryIn = e.windowStart.Add(Window).Sub(now)
	}
	return s
}
