package timer

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Timer is a stopwatch over wall-clock time. It keeps the instants it was
// started and stopped so the caller can record both.
type Timer struct {
	mu      sync.RWMutex
	now     Clock
	started time.Time
	stopped time.Time
	running bool
}

// New returns a stopped timer reading from now, or time.Now when nil.
func New(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

// Start records the start instant. Starting a running timer is a no-op.
func (t *Timer) Start() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return t.started
	}

	t.running = true
	t.started = t.now()
	t.stopped = time.Time{}
	return t.started
}

// Stop records the stop instant. Stopping a stopped timer is a no-op.
func (t *Timer) Stop() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return t.stopped
	}

	t.running = false
	t.stopped = t.now()
	return t.stopped
}

// Elapsed is the time between start and stop, or up to now while running.
func (t *Timer) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	switch {
	case t.started.IsZero():
		return 0
	case t.running:
		return t.now().Sub(t.started)
	default:
		return t.stopped.Sub(t.started)
	}
}
