package sim

// Key is a frontend-independent key identifier
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	}
	return "unknown"
}

// InputRouter applies key presses to the simulation, gated by state.
// Movement keys only work while Running; Enter only restarts after a game over.
type InputRouter struct {
	sim *Simulation
}

// NewInputRouter creates a router for the given simulation
func NewInputRouter(sim *Simulation) *InputRouter {
	return &InputRouter{sim: sim}
}

// Handle applies one key press and reports whether it changed anything
func (r *InputRouter) Handle(key Key) bool {
	if key == KeyEnter {
		if r.sim.State() != GameOver {
			return false
		}
		return r.sim.Restart() == nil
	}

	if r.sim.State() != Running {
		return false
	}

	player := r.sim.PlayerState()
	switch key {
	case KeyUp:
		player.Accelerate()
	case KeyDown:
		player.Decelerate()
	case KeyLeft:
		player.SteerLeft()
	case KeyRight:
		player.SteerRight()
	default:
		return false
	}
	return true
}
