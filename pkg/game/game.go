package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/golangdaddy/racingmoto/pkg/config"
	"github.com/golangdaddy/racingmoto/pkg/frame"
	"github.com/golangdaddy/racingmoto/pkg/sim"
	"github.com/golangdaddy/racingmoto/pkg/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           config.Config
	sim           *sim.Simulation
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance from the runtime configuration
func NewGame(cfg config.Config) *Game {
	g := &Game{cfg: cfg}

	var crash *sound.Player
	if cfg.Sound {
		crash = sound.NewPlayer()
	}

	seed := cfg.SeedOrNow(time.Now())
	pump := frame.NewPump()
	g.sim = sim.NewSimulation(cfg.Track(),
		sim.WithScheduler(pump),
		sim.WithRand(rand.New(rand.NewSource(seed))),
		sim.WithLogger(log.Default()),
		sim.OnTransition(func(t sim.Transition) {
			if t.To == sim.GameOver && crash != nil {
				crash.Crash()
			}
		}),
	)
	log.Printf("New session: %.0fx%.0f, road %.0f, seed %d", cfg.Width, cfg.Height, cfg.RoadWidth, seed)

	g.currentScreen = NewGameplayScreen(g.sim, pump, seed)
	return g
}

// Simulation returns the session driven by this game
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the playfield plus the control bar below it
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowSize(g.cfg)
}

// WindowSize is the logical screen size for a configuration
func WindowSize(cfg config.Config) (int, int) {
	return int(cfg.Width), int(cfg.Height) + controlBarHeight
}
