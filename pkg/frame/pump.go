// Package frame provides the frame drivers that invoke the simulation tick.
// Both drivers are used from a single goroutine: the host loop calls them
// between input handling steps, so a tick never overlaps an input event.
package frame

// Pump is a driver for hosts that already call us once per frame, such as
// ebiten's Update. Frame runs the tick only while started.
type Pump struct {
	tick func()
}

// NewPump creates a stopped pump
func NewPump() *Pump {
	return &Pump{}
}

// Start installs the tick function, replacing any previous one
func (p *Pump) Start(tick func()) {
	p.tick = tick
}

// Stop removes the tick function. Safe to call from inside the tick.
func (p *Pump) Stop() {
	p.tick = nil
}

// Running reports whether a tick function is installed
func (p *Pump) Running() bool {
	return p.tick != nil
}

// Frame runs one tick if started and reports whether it did
func (p *Pump) Frame() bool {
	tick := p.tick
	if tick == nil {
		return false
	}
	tick()
	return true
}
