package orion

import (
	"time"
)

// Pacer caps the frame rate by sleeping at the end of a frame for
// the remaining part of the frame budget. A frame that took longer
// than the budget is not compensated for.
//
// A nil Pacer or a Pacer with zero budget never sleeps. In that case
// the frame rate is defined by the present mode of the surface.
type Pacer struct {
	Budget time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a pacer for the given frame rate. A maxFPS of
// zero or less disables pacing.
func NewPacer(maxFPS int) *Pacer {
	p := &Pacer{now: time.Now, sleep: time.Sleep}

	if maxFPS > 0 {
		p.Budget = time.Second / time.Duration(maxFPS)
	}

	return p
}

// Start returns the point in time a frame started
func (p *Pacer) Start() time.Time {
	if p == nil {
		return time.Time{}
	}

	return p.now()
}

// Wait sleeps until the budget of a frame that began at start is used up.
// It returns the time slept.
func (p *Pacer) Wait(start time.Time) time.Duration {
	if p == nil || p.Budget <= 0 {
		return 0
	}

	elapsed := p.now().Sub(start)
	if elapsed >= p.Budget {
		return 0
	}

	remaining := p.Budget - elapsed
	p.sleep(remaining)

	return remaining
}
