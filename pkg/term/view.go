package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racingmoto/pkg/sim"
)

// Speed above which the exhaust flame shows
const flameSpeed = 6.0

// Centre line dash pattern in playfield pixels
const (
	dashLength = 30.0
	dashGap    = 25.0
)

var (
	styleRoad  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLine  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCar   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBike  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleFlame = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	roadRune  = '░'
	lineRune  = '│'
	carRune   = '█'
	bikeRune  = '^'
	flameRune = '*'
)

// View scales the pixel playfield onto the terminal grid. Row 0 holds the HUD.
type View struct {
	track sim.Track
}

// NewView creates a view for a track
func NewView(track sim.Track) *View {
	return &View{track: track}
}

// Draw renders one snapshot and shows it
func (v *View) Draw(screen tcell.Screen, snap sim.Snapshot) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	g := grid{track: v.track, cols: cols, rows: rows - 1}

	v.drawRoad(screen, g, snap.RoadOffset)
	for _, o := range snap.Obstacles {
		g.fill(screen, v.track.RoadX()+o.X, o.Y, sim.ObstacleWidth, sim.ObstacleHeight, carRune, styleCar)
	}
	v.drawBike(screen, g, snap.Player)

	drawString(screen, 0, 0, HUDLine(snap), styleHUD)
	if msg := StatusLine(snap); msg != "" {
		drawString(screen, (cols-len([]rune(msg)))/2, 1+g.rows/3, msg, styleAlert)
	}
	screen.Show()
}

func (v *View) drawRoad(screen tcell.Screen, g grid, offset float64) {
	t := v.track
	left := g.col(t.RoadX())
	right := g.col(t.RoadX() + t.RoadWidth)
	for row := 0; row < g.rows; row++ {
		for col := left; col < right; col++ {
			screen.SetContent(col, 1+row, roadRune, nil, styleRoad)
		}
	}

	centre := g.col(t.Width / 2)
	for y := offset; y < t.Height; y += dashLength + dashGap {
		end := math.Min(y+dashLength, t.Height)
		for row := g.row(y); row <= g.row(end-1); row++ {
			screen.SetContent(centre, 1+row, lineRune, nil, styleLine)
		}
	}
}

func (v *View) drawBike(screen tcell.Screen, g grid, p sim.Player) {
	col := g.col(v.track.RoadX() + p.X)
	row := g.row(v.track.PlayerY() + 30)
	screen.SetContent(col, 1+row, bikeRune, nil, styleBike)
	if p.Speed > flameSpeed && row+1 < g.rows {
		screen.SetContent(col, 2+row, flameRune, nil, styleFlame)
	}
}

// HUDLine is the status bar text
func HUDLine(snap sim.Snapshot) string {
	return fmt.Sprintf("Score: %d  Speed: %d", snap.Score, int(math.Floor(snap.Player.Speed)))
}

// StatusLine is the centred banner for states that need one
func StatusLine(snap sim.Snapshot) string {
	switch snap.State {
	case sim.Idle:
		return "RACING MOTO  [space] start  [q] quit"
	case sim.Paused:
		return "PAUSED  [p] resume  [r] restart"
	case sim.GameOver:
		switch snap.Cause {
		case sim.CauseOffRoad:
			return "GAME OVER: off the road  [enter] restart"
		case sim.CauseCrash:
			return "GAME OVER: crashed  [enter] restart"
		}
		return "GAME OVER  [enter] restart"
	}
	return ""
}

// grid converts playfield pixels to cells
type grid struct {
	track      sim.Track
	cols, rows int
}

func (g grid) col(x float64) int {
	return int(math.Floor(x * float64(g.cols) / g.track.Width))
}

func (g grid) row(y float64) int {
	return int(math.Floor(y * float64(g.rows) / g.track.Height))
}

// fill paints the cells covered by a pixel rectangle, clipped to the playfield
func (g grid) fill(screen tcell.Screen, x, y, w, h float64, r rune, style tcell.Style) {
	c0, c1 := max(g.col(x), 0), min(g.col(x+w-1), g.cols-1)
	r0, r1 := max(g.row(y), 0), min(g.row(y+h-1), g.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			screen.SetContent(col, 1+row, r, nil, style)
		}
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
