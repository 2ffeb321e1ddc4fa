package engine

import "time"

// Clock measures the time between successive frame boundaries.
type Clock struct {
	now     func() time.Time
	prev    time.Time
	cur     time.Time
	elapsed float32
}

// NewClock returns a clock reading the wall clock.
func NewClock() *Clock {
	return newClockWithNow(time.Now)
}

func newClockWithNow(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset marks the current instant as the last frame boundary.
func (c *Clock) Reset() {
	t := c.now()
	c.prev = t
	c.cur = t
	c.elapsed = 0
}

// Tick closes the current frame and returns its length in seconds.
func (c *Clock) Tick() float32 {
	c.prev = c.cur
	c.cur = c.now()
	c.elapsed = float32(c.cur.Sub(c.prev).Seconds())
	return c.elapsed
}

// Elapsed returns the length of the last completed frame in seconds.
func (c *Clock) Elapsed() float32 { return c.elapsed }
