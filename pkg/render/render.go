// Package render draws simulation snapshots with ebiten
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/racingmoto/pkg/background"
	"github.com/golangdaddy/racingmoto/pkg/sim"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Centre line dash pattern
const (
	dashLength = 30.0
	dashGap    = 25.0
)

// Speed above which the exhaust flame shows
const flameSpeed = 6.0

var (
	roadColor       = color.RGBA{0x55, 0x55, 0x55, 0xff}
	lineColor       = color.RGBA{0xee, 0xee, 0xee, 0xff}
	carColor        = color.RGBA{0xb7, 0x1c, 0x1c, 0xff}
	windshieldColor = color.RGBA{0x90, 0xca, 0xf9, 0xff}
	bikeColor       = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
	riderColor      = color.RGBA{0x0d, 0x47, 0xa1, 0xff}
	flameColor      = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	shadowColor     = color.RGBA{0, 0, 0, 0x66}
)

// whiteSubImage is the source texture for filled paths
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Renderer draws the road, traffic, bike and HUD for one snapshot
type Renderer struct {
	track    sim.Track
	backdrop *ebiten.Image
	face     text.Face
	rng      *rand.Rand // Flame flicker only, never affects the simulation
}

// NewRenderer creates a renderer with a city backdrop generated from seed
func NewRenderer(track sim.Track, seed int64) *Renderer {
	gen := background.NewGenerator(int(track.Width), int(track.Height))
	return &Renderer{
		track:    track,
		backdrop: gen.GenerateCity(seed),
		face:     text.NewGoXFace(bitmapfont.Face),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Draw renders the whole playfield
func (r *Renderer) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	screen.DrawImage(r.backdrop, nil)

	r.drawRoad(screen, snap.RoadOffset)
	r.drawCars(screen, snap.Obstacles)
	r.drawBike(screen, snap.Player)
	r.drawHUD(screen, snap)
}

// drawRoad draws the asphalt and the scrolling centre line
func (r *Renderer) drawRoad(screen *ebiten.Image, offset float64) {
	t := r.track
	vector.DrawFilledRect(screen, float32(t.RoadX()), 0, float32(t.RoadWidth), float32(t.Height), roadColor, false)

	x := float32(t.Width / 2)
	for _, d := range Dashes(offset, t.Height) {
		vector.StrokeLine(screen, x, float32(d[0]), x, float32(d[1]), 3, lineColor, false)
	}
}

// Dashes returns the [start, end] rows of the centre line dashes, starting
// at the scroll offset and clipped to the playfield height
func Dashes(offset, height float64) [][2]float64 {
	var out [][2]float64
	for y := offset; y < height; y += dashLength + dashGap {
		end := math.Min(y+dashLength, height)
		out = append(out, [2]float64{y, end})
	}
	return out
}

// drawCars draws each traffic car as a red box with a windshield and lights
func (r *Renderer) drawCars(screen *ebiten.Image, cars []sim.Obstacle) {
	roadX := r.track.RoadX()
	for _, c := range cars {
		x := float32(roadX + c.X)
		y := float32(c.Y)

		vector.DrawFilledRect(screen, x+6, y+55, 28, 10, shadowColor, false)
		vector.DrawFilledRect(screen, x, y, sim.ObstacleWidth, sim.ObstacleHeight, carColor, false)
		vector.DrawFilledRect(screen, x+6, y+8, 28, 14, windshieldColor, false)
		vector.DrawFilledRect(screen, x+5, y+55, 6, 5, color.White, false)
		vector.DrawFilledRect(screen, x+29, y+55, 6, 5, color.White, false)
	}
}

// drawBike draws the rider at the fixed player row
func (r *Renderer) drawBike(screen *ebiten.Image, p sim.Player) {
	cx := float32(r.track.RoadX() + p.X)
	y := float32(r.track.PlayerY())

	fillPath(screen, ellipse(cx, y+55, 14, 6), shadowColor)

	var body vector.Path
	body.MoveTo(cx-10, y+60)
	body.LineTo(cx+10, y+60)
	body.LineTo(cx+5, y+15)
	body.LineTo(cx-5, y+15)
	body.Close()
	fillPath(screen, &body, bikeColor)

	vector.DrawFilledRect(screen, cx-4, y+30, 8, 18, riderColor, false)
	vector.DrawFilledCircle(screen, cx, y+10, 5, color.Black, true)

	if p.Speed > flameSpeed {
		var flame vector.Path
		flame.MoveTo(cx-2, y+65)
		flame.LineTo(cx+2, y+65)
		flame.LineTo(cx, y+80+float32(r.rng.Float64()*6))
		flame.Close()
		fillPath(screen, &flame, flameColor)
	}
}

// drawHUD prints score and speed in the top-left corner
func (r *Renderer) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	for i, line := range HUDLines(snap) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, 6+float64(i)*20)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, r.face, op)
	}
}

// HUDLines returns the heads-up text for a snapshot
func HUDLines(snap sim.Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Speed: %d", int(math.Floor(snap.Player.Speed))),
	}
}

// ellipse approximates an axis-aligned ellipse with a polygon
func ellipse(cx, cy, rx, ry float32) *vector.Path {
	const segments = 24
	var p vector.Path
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := cx + rx*float32(math.Cos(a))
		y := cy + ry*float32(math.Sin(a))
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return &p
}

// fillPath fills a closed path with a solid colour
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)

	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
