package core

import (
	"sort"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing.
	// Returns false if the callback already fired or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock uses the wall clock and time.AfterFunc.
// Callbacks run on their own goroutine, so callers that share state with them
// must serialize access themselves.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock is a virtual clock and scheduler.
// Time only moves on Advance, and due callbacks fire on the caller's goroutine
// in deadline order (ties in scheduling order).
type ManualClock struct {
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

// NewManualClock creates a ManualClock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the virtual time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// AfterFunc schedules f at now+d.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.seq++
	t := &manualTimer{
		clock:    c,
		deadline: c.now.Add(d),
		seq:      c.seq,
		fn:       f,
	}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves virtual time forward by d, firing every callback whose
// deadline is reached. Callbacks scheduled while firing are honoured if they
// also fall inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		if next.deadline.After(c.now) {
			c.now = next.deadline
		}
		next.done = true
		c.remove(next)
		next.fn()
	}
	c.now = target
}

// Pending returns the number of armed callbacks.
func (c *ManualClock) Pending() int {
	return len(c.pending)
}

func (c *ManualClock) nextDue(target time.Time) *manualTimer {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		a, b := c.pending[i], c.pending[j]
		if a.deadline.Equal(b.deadline) {
			return a.seq < b.seq
		}
		return a.deadline.Before(b.deadline)
	})
	if c.pending[0].deadline.After(target) {
		return nil
	}
	return c.pending[0]
}

func (c *ManualClock) remove(t *manualTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Stop cancels the callback if it has not fired.
func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
