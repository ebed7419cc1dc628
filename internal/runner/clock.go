package runner

import "time"

// Timer fires once per interval of simulated time.
// It only moves when advanced, so it is frozen whenever the clock is.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	stopped  bool
}

// NewTimer creates a running timer.
func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval}
}

// Advance moves the timer forward by dt and returns how many times it fired.
func (t *Timer) Advance(dt time.Duration) int {
	if t.stopped || t.interval <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.interval)
	t.elapsed -= time.Duration(n) * t.interval
	return n
}

// Stop cancels the timer until the next Reset.
func (t *Timer) Stop() { t.stopped = true }

// Stopped reports whether the timer was stopped.
func (t *Timer) Stopped() bool { return t.stopped }

// Reset clears elapsed time and restarts a stopped timer.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.stopped = false
}

// Clock turns variable frame times into a whole number of fixed steps.
type Clock struct {
	step     time.Duration
	maxFrame time.Duration // upper bound on the time consumed by one Advance
	acc      time.Duration
	paused   bool
	stopped  bool
	steps    uint64
}

// NewClock creates a clock with the given step and frame cap.
// A non-positive maxFrame disables the cap.
func NewClock(step, maxFrame time.Duration) *Clock {
	return &Clock{step: step, maxFrame: maxFrame}
}

// Step returns the fixed step length.
func (c *Clock) Step() time.Duration { return c.step }

// Advance accumulates elapsed time and returns the number of steps to run.
// While paused or stopped nothing accumulates.
func (c *Clock) Advance(elapsed time.Duration) int {
	if c.paused || c.stopped || c.step <= 0 || elapsed <= 0 {
		return 0
	}
	if c.maxFrame > 0 && elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	c.acc += elapsed
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	c.steps += uint64(n)
	return n
}

// SetPaused suspends or resumes the clock. Resuming drops any
// accumulated time so a long pause never fast-forwards.
func (c *Clock) SetPaused(paused bool) {
	if c.paused && !paused {
		c.acc = 0
	}
	c.paused = paused
}

// Paused reports whether the clock is suspended.
func (c *Clock) Paused() bool { return c.paused }

// Stop halts the clock for good; only Reset restarts it.
func (c *Clock) Stop() { c.stopped = true }

// Stopped reports whether the clock was stopped.
func (c *Clock) Stopped() bool { return c.stopped }

// Steps returns the number of steps run since the last Reset.
func (c *Clock) Steps() uint64 { return c.steps }

// Alpha returns how far the accumulator is into the next step, in [0, 1).
func (c *Clock) Alpha() float64 {
	if c.step <= 0 {
		return 0
	}
	return float64(c.acc) / float64(c.step)
}

// Reset clears all accumulated state and resumes the clock.
func (c *Clock) Reset() {
	c.acc = 0
	c.paused = false
	c.stopped = false
	c.steps = 0
}

// msDuration converts a millisecond count from config into a Duration.
func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
