package core

import (
	"reflect"
	"testing"
	"time"
)

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))
	var fired []string

	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "b") })

	c.Advance(99 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}

	c.Advance(250 * time.Millisecond)
	if !reflect.DeepEqual(fired, []string{"a", "b", "c"}) {
		t.Errorf("fired = %v, want [a b c]", fired)
	}
	if got := c.Now(); !got.Equal(time.Unix(0, 0).Add(349 * time.Millisecond)) {
		t.Errorf("now = %v", got)
	}
}

func TestManualClockNowDuringCallback(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewManualClock(start)
	var at time.Time

	c.AfterFunc(time.Second, func() { at = c.Now() })
	c.Advance(5 * time.Second)

	if !at.Equal(start.Add(time.Second)) {
		t.Errorf("callback saw now = %v, want deadline", at)
	}
}

func TestManualClockStop(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))
	fired := false

	tm := c.AfterFunc(time.Second, func() { fired = true })
	if !tm.Stop() {
		t.Fatal("Stop on armed timer returned false")
	}
	if tm.Stop() {
		t.Error("second Stop returned true")
	}
	c.Advance(2 * time.Second)

	if fired {
		t.Error("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("pending = %d, want 0", c.Pending())
	}
}

func TestManualClockChainedCallbacks(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))
	count := 0

	var tick func()
	tick = func() {
		count++
		c.AfterFunc(100*time.Millisecond, tick)
	}
	c.AfterFunc(100*time.Millisecond, tick)
	c.Advance(450 * time.Millisecond)

	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if c.Pending() != 1 {
		t.Errorf("pending = %d, want 1", c.Pending())
	}
}
