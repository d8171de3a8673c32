package term

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racingmoto/pkg/config"
	"github.com/golangdaddy/racingmoto/pkg/frame"
	"github.com/golangdaddy/racingmoto/pkg/sim"
)

// App runs a simulation in a terminal
type App struct {
	screen tcell.Screen
	sim    *sim.Simulation
	router *sim.InputRouter
	ticker *frame.Ticker
	view   *View
	logger *log.Logger
}

// Crasher plays the crash effect
type Crasher interface {
	Crash()
}

// NewApp builds the simulation for cfg on an initialised screen. sound may be nil.
func NewApp(screen tcell.Screen, cfg config.Config, logger *log.Logger, sound Crasher) *App {
	seed := cfg.SeedOrNow(time.Now())
	a := &App{
		screen: screen,
		ticker: frame.NewTicker(cfg.TickRate),
		view:   NewView(cfg.Track()),
		logger: logger,
	}
	a.sim = sim.NewSimulation(cfg.Track(),
		sim.WithScheduler(a.ticker),
		sim.WithRand(rand.New(rand.NewSource(seed))),
		sim.WithLogger(logger),
		sim.OnTransition(func(t sim.Transition) {
			if t.To == sim.GameOver && sound != nil {
				sound.Crash()
			}
		}),
	)
	a.router = sim.NewInputRouter(a.sim)
	logger.Printf("New session: %.0fx%.0f, road %.0f, seed %d", cfg.Width, cfg.Height, cfg.RoadWidth, seed)
	return a
}

// Simulation returns the session driven by this app
func (a *App) Simulation() *sim.Simulation {
	return a.sim
}

// Run owns the simulation until the user quits or ctx is cancelled.
// Input events and ticks are handled on this goroutine only.
func (a *App) Run(ctx context.Context) {
	defer a.ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalised
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return
			}
			a.draw()

		case <-a.ticker.C():
			if a.ticker.Fire() {
				a.draw()
			}
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, key := Translate(ev.Key(), ev.Rune())
		if cmd == CommandQuit {
			a.logger.Printf("Quit at score %d", a.sim.Score())
			return false
		}
		Apply(a.sim, a.router, cmd, key)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) draw() {
	a.view.Draw(a.screen, a.sim.Snapshot())
}
