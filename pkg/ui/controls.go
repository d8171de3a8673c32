package ui

import (
	"image"

	"github.com/golangdaddy/racingmoto/pkg/sim"
)

// ControlBarHeight is the strip under the playfield holding the Pause button
const ControlBarHeight = 60

// Action is a command a button sends to the simulation
type Action int

const (
	ActionStart Action = iota
	ActionPause
	ActionResume
	ActionRestart
)

// Button is a clickable command in screen coordinates
type Button struct {
	Label  string
	Rect   image.Rectangle
	Action Action
}

// Commands is the command surface buttons drive; *sim.Simulation satisfies it
type Commands interface {
	Start() error
	Pause() error
	Resume() error
	Restart() error
}

// Layout places the buttons for a playfield of the given size
type Layout struct {
	Width, Height int
}

// Buttons returns the buttons visible in a state
func (l Layout) Buttons(state sim.State) []Button {
	cx := l.Width / 2
	switch state {
	case sim.Idle:
		return []Button{
			{Label: "Start", Rect: centred(cx, l.Height/2, 120, 44), Action: ActionStart},
		}
	case sim.Running:
		return []Button{
			{Label: "Pause", Rect: image.Rect(20, l.Height+10, 110, l.Height+50), Action: ActionPause},
		}
	case sim.Paused:
		return []Button{
			{Label: "Resume", Rect: centred(cx, l.Height*45/100, 120, 40), Action: ActionResume},
			{Label: "Restart", Rect: centred(cx, l.Height*55/100, 120, 40), Action: ActionRestart},
		}
	case sim.GameOver:
		return []Button{
			{Label: "Restart", Rect: centred(cx, l.Height/2, 120, 40), Action: ActionRestart},
		}
	}
	return nil
}

// HitTest returns the button under (x, y), if any
func HitTest(buttons []Button, x, y int) (Button, bool) {
	pt := image.Pt(x, y)
	for _, b := range buttons {
		if pt.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// Apply sends an action to the simulation
func Apply(cmds Commands, a Action) error {
	switch a {
	case ActionStart:
		return cmds.Start()
	case ActionPause:
		return cmds.Pause()
	case ActionResume:
		return cmds.Resume()
	case ActionRestart:
		return cmds.Restart()
	}
	return nil
}

// centred returns a w x h rectangle centred on (cx, cy)
func centred(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}
