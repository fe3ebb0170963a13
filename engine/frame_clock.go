package engine

// FrameClock turns absolute timestamps into per-frame delta times.
// The first Advance returns 0 so the first frame never moves the camera by the
// time spent creating the window.
type FrameClock struct {
	last     float64
	started  bool
	maxDelta float32
}

// NewFrameClock creates a FrameClock. A positive maxDelta caps every delta, so a
// stall (window drag, breakpoint) does not teleport the camera.
//
// Parameters:
//   - maxDelta: largest delta returned in seconds, 0 for no cap
//
// Returns:
//   - *FrameClock: the new clock
func NewFrameClock(maxDelta float32) *FrameClock {
	return &FrameClock{maxDelta: max(maxDelta, 0)}
}

// Advance records now as the current frame time and returns the seconds since
// the previous frame. Time going backwards yields 0.
//
// Parameters:
//   - now: the current time in seconds
//
// Returns:
//   - float32: the frame delta in seconds, never negative
func (c *FrameClock) Advance(now float64) float32 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := float32(max(now-c.last, 0))
	c.last = now
	if c.maxDelta > 0 {
		dt = min(dt, c.maxDelta)
	}
	return dt
}

// Last returns the timestamp passed to the most recent Advance.
func (c *FrameClock) Last() float64 {
	return c.last
}
