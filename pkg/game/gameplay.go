package game

import (
	"errors"
	"log"

	"github.com/golangdaddy/racingmoto/pkg/frame"
	"github.com/golangdaddy/racingmoto/pkg/render"
	"github.com/golangdaddy/racingmoto/pkg/sim"
	"github.com/golangdaddy/racingmoto/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const controlBarHeight = ui.ControlBarHeight

// Held arrow keys repeat after repeatDelay frames, then every repeatInterval frames
const (
	repeatDelay    = 20
	repeatInterval = 4
)

// movementKeys maps ebiten arrow keys to simulation keys
var movementKeys = []struct {
	key ebiten.Key
	sim sim.Key
}{
	{ebiten.KeyArrowUp, sim.KeyUp},
	{ebiten.KeyArrowDown, sim.KeyDown},
	{ebiten.KeyArrowLeft, sim.KeyLeft},
	{ebiten.KeyArrowRight, sim.KeyRight},
}

// GameplayScreen drives the simulation from keyboard, mouse and touch input
// and draws the road, traffic and overlay
type GameplayScreen struct {
	sim      *sim.Simulation
	router   *sim.InputRouter
	pump     *frame.Pump
	renderer *render.Renderer
	overlay  *ui.Overlay
	touchIDs []ebiten.TouchID
}

// NewGameplayScreen creates the gameplay screen for a simulation ticked by pump
func NewGameplayScreen(s *sim.Simulation, pump *frame.Pump, seed int64) *GameplayScreen {
	track := s.Track()
	return &GameplayScreen{
		sim:      s,
		router:   sim.NewInputRouter(s),
		pump:     pump,
		renderer: render.NewRenderer(track, seed),
		overlay:  ui.NewOverlay(ui.Layout{Width: int(track.Width), Height: int(track.Height)}),
	}
}

// Update handles input, then runs at most one simulation tick
func (gs *GameplayScreen) Update() error {
	for _, mk := range movementKeys {
		if shouldRepeat(inpututil.KeyPressDuration(mk.key)) {
			gs.router.Handle(mk.sim)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs.router.Handle(sim.KeyEnter)
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := shortcut(k, gs.sim.State()); ok {
			gs.apply(a)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs.click(ebiten.CursorPosition())
	}
	gs.touchIDs = inpututil.AppendJustPressedTouchIDs(gs.touchIDs[:0])
	for _, id := range gs.touchIDs {
		gs.click(ebiten.TouchPosition(id))
	}

	gs.pump.Frame()
	return nil
}

// Draw renders the current snapshot and the overlay on top
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	snap := gs.sim.Snapshot()
	gs.renderer.Draw(screen, snap)

	x, y := ebiten.CursorPosition()
	gs.overlay.Draw(screen, snap, x, y)
}

// click presses the button under (x, y)
func (gs *GameplayScreen) click(x, y int) {
	if b, ok := ui.HitTest(gs.overlay.Buttons(gs.sim.State()), x, y); ok {
		gs.apply(b.Action)
	}
}

func (gs *GameplayScreen) apply(a ui.Action) {
	if err := ui.Apply(gs.sim, a); err != nil && !errors.Is(err, sim.ErrIllegalTransition) {
		log.Printf("Command failed: %v", err)
	}
}

// shouldRepeat reports whether a key held for d frames fires this frame
func shouldRepeat(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// shortcut maps a command key to the button action it stands for in a state
func shortcut(k ebiten.Key, state sim.State) (ui.Action, bool) {
	switch k {
	case ebiten.KeySpace:
		if state == sim.Idle {
			return ui.ActionStart, true
		}
	case ebiten.KeyP, ebiten.KeyEscape:
		switch state {
		case sim.Running:
			return ui.ActionPause, true
		case sim.Paused:
			return ui.ActionResume, true
		}
	case ebiten.KeyR:
		if state == sim.Paused || state == sim.GameOver {
			return ui.ActionRestart, true
		}
	}
	return 0, false
}
