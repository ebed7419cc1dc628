package runner

import (
	"testing"
	"time"
)

func TestTimerAdvance(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)

	tests := []struct {
		dt   time.Duration
		want int
	}{
		{50 * time.Millisecond, 0},
		{50 * time.Millisecond, 1},
		{250 * time.Millisecond, 2},
		{50 * time.Millisecond, 1}, // 50ms left over from the previous advance
	}
	for i, tt := range tests {
		if got := tm.Advance(tt.dt); got != tt.want {
			t.Errorf("Advance #%d = %d, expected %d", i, got, tt.want)
		}
	}
}

func TestTimerStopAndReset(t *testing.T) {
	tm := NewTimer(10 * time.Millisecond)
	tm.Advance(5 * time.Millisecond)
	tm.Stop()
	if got := tm.Advance(time.Second); got != 0 {
		t.Errorf("stopped timer fired %d times", got)
	}

	tm.Reset()
	if tm.Stopped() {
		t.Error("Reset() should restart the timer")
	}
	if got := tm.Advance(5 * time.Millisecond); got != 0 {
		t.Errorf("Reset() should clear elapsed time, fired %d", got)
	}
}

func TestTimerZeroIntervalNeverFires(t *testing.T) {
	tm := NewTimer(0)
	if got := tm.Advance(time.Hour); got != 0 {
		t.Errorf("Advance() = %d, expected 0", got)
	}
}

func TestClockSteps(t *testing.T) {
	c := NewClock(10*time.Millisecond, 0)
	if got := c.Advance(35 * time.Millisecond); got != 3 {
		t.Errorf("Advance(35ms) = %d, expected 3", got)
	}
	if got := c.Advance(5 * time.Millisecond); got != 1 {
		t.Errorf("Advance(5ms) with 5ms carried = %d, expected 1", got)
	}
	if c.Steps() != 4 {
		t.Errorf("Steps() = %d, expected 4", c.Steps())
	}
}

func TestClockMaxFrame(t *testing.T) {
	c := NewClock(10*time.Millisecond, 50*time.Millisecond)
	if got := c.Advance(10 * time.Second); got != 5 {
		t.Errorf("Advance(10s) = %d, expected 5 with a 50ms cap", got)
	}
}

func TestClockPauseDropsAccumulator(t *testing.T) {
	c := NewClock(10*time.Millisecond, 0)
	c.Advance(8 * time.Millisecond)

	c.SetPaused(true)
	if got := c.Advance(time.Second); got != 0 {
		t.Errorf("paused Advance() = %d, expected 0", got)
	}

	c.SetPaused(false)
	if got := c.Advance(8 * time.Millisecond); got != 0 {
		t.Errorf("Advance after resume = %d, expected 0 (accumulator dropped)", got)
	}
	if got := c.Advance(2 * time.Millisecond); got != 1 {
		t.Errorf("Advance = %d, expected 1", got)
	}
}

func TestClockStopAndReset(t *testing.T) {
	c := NewClock(10*time.Millisecond, 0)
	c.Advance(25 * time.Millisecond)
	c.Stop()
	if got := c.Advance(time.Second); got != 0 {
		t.Errorf("stopped Advance() = %d, expected 0", got)
	}

	c.Reset()
	if c.Steps() != 0 || c.Alpha() != 0 {
		t.Errorf("Reset() left Steps=%d Alpha=%v", c.Steps(), c.Alpha())
	}
	if got := c.Advance(10 * time.Millisecond); got != 1 {
		t.Errorf("Advance after Reset = %d, expected 1", got)
	}
}
