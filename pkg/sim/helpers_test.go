package sim

import "time"

// fakeClock is a controllable time source
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// scriptedRand returns the given values in order, repeating the last one
type scriptedRand struct {
	values []float64
	next   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next]
	if r.next < len(r.values)-1 {
		r.next++
	}
	return v
}

// recordingScheduler counts start/stop calls and holds the current tick function
type recordingScheduler struct {
	tick   func()
	starts int
	stops  int
}

func (r *recordingScheduler) Start(tick func()) {
	r.tick = tick
	r.starts++
}

func (r *recordingScheduler) Stop() {
	r.tick = nil
	r.stops++
}

func (r *recordingScheduler) frame() {
	if r.tick != nil {
		r.tick()
	}
}
