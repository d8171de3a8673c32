package frame

import "time"

// DefaultInterval is roughly one 60Hz display refresh
const DefaultInterval = 16 * time.Millisecond

// Ticker is a driver for select loops. The owner selects on C and calls
// Fire when it delivers; after Stop, C is nil and Fire does nothing, so a
// tick value already buffered in the old channel can never run a stale tick.
type Ticker struct {
	interval time.Duration
	ticker   *time.Ticker
	tick     func()
}

// NewTicker creates a stopped ticker firing every interval
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval}
}

// Interval returns the tick period
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start begins ticking with the given function. Starting again replaces
// the function and restarts the period.
func (t *Ticker) Start(tick func()) {
	t.Stop()
	t.tick = tick
	t.ticker = time.NewTicker(t.interval)
}

// Stop halts ticking. Safe to call from inside the tick.
func (t *Ticker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
	t.tick = nil
}

// Running reports whether the ticker is started
func (t *Ticker) Running() bool {
	return t.ticker != nil
}

// C returns the channel to select on, nil while stopped
func (t *Ticker) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

// Fire runs the tick if started and reports whether it did
func (t *Ticker) Fire() bool {
	tick := t.tick
	if tick == nil {
		return false
	}
	tick()
	return true
}
