// Package timer implements the cooking countdown: start, pause, reset,
// with the remaining time derived from a wall clock so no goroutine runs
// between calls.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// PresetMinutes are the quick-select durations offered alongside the timer.
var PresetMinutes = []int{1, 5, 10, 15, 30, 60}

// Timer is a pausable countdown.
type Timer struct {
	mu        sync.Mutex
	duration  time.Duration
	remaining time.Duration
	running   bool
	startedAt time.Time
	now       func() time.Time
}

// Option configures the timer.
type Option func(*Timer)

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New creates a stopped timer with the given duration.
func New(d time.Duration, opts ...Option) *Timer {
	t := &Timer{
		duration:  d,
		remaining: d,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins or resumes the countdown. Starting a finished or already
// running timer is a no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.remaining <= 0 {
		return
	}
	t.running = true
	t.startedAt = t.now()
}

// Pause freezes the countdown, keeping the remaining time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.remaining = t.remainingLocked()
	t.running = false
}

// Reset stops the timer and restores the full duration.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.remaining = t.duration
}

// SetDuration changes the countdown length and resets the timer.
func (t *Timer) SetDuration(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.duration = d
	t.remaining = d
	t.running = false
}

// Remaining returns the time left, clamped at zero.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingLocked()
}

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running && t.remainingLocked() > 0
}

// Done reports whether the countdown reached zero.
func (t *Timer) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingLocked() <= 0
}

func (t *Timer) remainingLocked() time.Duration {
	if !t.running {
		return t.remaining
	}
	left := t.remaining - t.now().Sub(t.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Format renders a duration as M:SS, the way the timer displays it.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
