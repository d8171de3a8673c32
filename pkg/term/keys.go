// Package term is the tcell terminal frontend: key bindings, a cell
// renderer for simulation snapshots, a beep crash tone and the event loop.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racingmoto/pkg/sim"
)

// Command is what a terminal key press asks for
type Command int

const (
	CommandNone    Command = iota
	CommandKey             // Forward the key to the input router
	CommandStart           // Start from Idle
	CommandPause           // Pause or resume
	CommandRestart         // Restart from Paused or GameOver
	CommandQuit
)

// Translate maps a tcell key event to a command. For CommandKey the
// returned sim.Key is the key to route.
func Translate(key tcell.Key, ch rune) (Command, sim.Key) {
	switch key {
	case tcell.KeyUp:
		return CommandKey, sim.KeyUp
	case tcell.KeyDown:
		return CommandKey, sim.KeyDown
	case tcell.KeyLeft:
		return CommandKey, sim.KeyLeft
	case tcell.KeyRight:
		return CommandKey, sim.KeyRight
	case tcell.KeyEnter:
		return CommandKey, sim.KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, 0
	case tcell.KeyRune:
		switch ch {
		case ' ':
			return CommandStart, 0
		case 'p', 'P':
			return CommandPause, 0
		case 'r', 'R':
			return CommandRestart, 0
		case 'q', 'Q':
			return CommandQuit, 0
		}
	}
	return CommandNone, 0
}

// Apply runs a non-quit command against the simulation and reports whether
// the simulation accepted it
func Apply(s *sim.Simulation, router *sim.InputRouter, cmd Command, key sim.Key) bool {
	switch cmd {
	case CommandKey:
		return router.Handle(key)
	case CommandStart:
		return s.Start() == nil
	case CommandPause:
		if s.State() == sim.Paused {
			return s.Resume() == nil
		}
		return s.Pause() == nil
	case CommandRestart:
		return s.Restart() == nil
	}
	return false
}
