package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/racingmoto/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the state-dependent chrome over the playfield: title,
// pause veil, game over banner and the buttons for the current state
type Overlay struct {
	layout    Layout
	startTime time.Time
}

// NewOverlay creates an overlay for a playfield of the given size
func NewOverlay(layout Layout) *Overlay {
	return &Overlay{
		layout:    layout,
		startTime: time.Now(),
	}
}

// Buttons returns the buttons currently shown
func (o *Overlay) Buttons(state sim.State) []Button {
	return o.layout.Buttons(state)
}

// Draw renders the overlay for a snapshot. cursorX/cursorY highlight the hovered button.
func (o *Overlay) Draw(screen *ebiten.Image, snap sim.Snapshot, cursorX, cursorY int) {
	width := float64(o.layout.Width)
	height := float64(o.layout.Height)
	elapsed := time.Since(o.startTime).Seconds()

	// Control bar under the playfield
	vector.DrawFilledRect(screen, 0, float32(height), float32(width), ControlBarHeight, color.Black, false)

	switch snap.State {
	case sim.Idle:
		// Pulsing title, 1.0 to 1.1
		pulse := 1.0 + 0.1*sinWave(elapsed*2.0)
		drawText(screen, "RACING MOTO", width/2, height/3, 28*pulse, color.RGBA{255, 200, 50, 255})
		drawText(screen, "Arrows: throttle and steer", width/2, height*0.62, 12, color.RGBA{180, 180, 200, 255})
		if int(elapsed*2)%2 == 0 {
			drawText(screen, "SPACE to start", width/2, height*0.68, 12, color.RGBA{150, 200, 255, 255})
		}

	case sim.Paused:
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 120}, false)
		drawText(screen, "PAUSED", width/2, height/3, 24, color.White)

	case sim.GameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 100}, false)
		drawText(screen, "GAME OVER", width/2, height*0.4, 28, color.RGBA{255, 40, 40, 255})
		drawText(screen, GameOverDetail(snap), width/2, height*0.4+30, 12, color.White)
		drawText(screen, "ENTER to restart", width/2, height*0.6, 12, color.RGBA{150, 200, 255, 255})
	}

	for _, b := range o.layout.Buttons(snap.State) {
		drawButton(screen, b, pointIn(b, cursorX, cursorY))
	}
}

// GameOverDetail explains how the run ended
func GameOverDetail(snap sim.Snapshot) string {
	switch snap.Cause {
	case sim.CauseOffRoad:
		return "You left the road"
	case sim.CauseCrash:
		return "You hit a car"
	}
	return ""
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

func pointIn(b Button, x, y int) bool {
	_, ok := HitTest([]Button{b}, x, y)
	return ok
}
