package orion

import (
	"time"
)

// FrameClock measures the time between two frames with
// millisecond resolution.
type FrameClock struct {
	// milliseconds since some fixed point in time
	ticks func() int64

	started bool

	last    int64
	current int64

	delta float32
}

func NewFrameClock() *FrameClock {
	epoch := time.Now()

	return NewFrameClockWithTicks(func() int64 {
		return time.Since(epoch).Milliseconds()
	})
}

// NewFrameClockWithTicks creates a clock reading the current time
// in milliseconds from ticks.
func NewFrameClockWithTicks(ticks func() int64) *FrameClock {
	return &FrameClock{ticks: ticks}
}

// Tick advances the clock and returns the time since the previous
// tick in seconds. The first tick always returns zero.
func (c *FrameClock) Tick() float32 {
	now := c.ticks()

	if !c.started {
		c.started = true
		c.last = now
		c.current = now
	}

	c.last = c.current
	c.current = now

	c.delta = float32(c.current-c.last) / 1000
	return c.delta
}

// Delta returns the value of the previous call to Tick
func (c *FrameClock) Delta() float32 {
	return c.delta
}

// FPS is the instantaneous frame rate. It is zero if no time
// has passed between the last two ticks.
func (c *FrameClock) FPS() float32 {
	if c.delta <= 0 {
		return 0
	}

	return 1 / c.delta
}
