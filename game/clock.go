package game

import "time"

// Clock reports elapsed simulation time for timers such as food respawn.
type Clock interface {
	Now(tick int32) time.Duration
}

// WallClock measures real time since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the monotonic time elapsed since start. The tick is ignored.
func (c *WallClock) Now(int32) time.Duration {
	return time.Since(c.start)
}

// TickClock derives time from the tick counter, one Step per tick.
type TickClock struct {
	Step time.Duration
}

// Now returns tick × Step.
func (c TickClock) Now(tick int32) time.Duration {
	return time.Duration(tick) * c.Step
}

// StepForFPS returns the duration of one tick at the given target rate.
func StepForFPS(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
