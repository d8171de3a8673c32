package background

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Building is one block of the skyline, in image coordinates
type Building struct {
	X, Width   int
	Height     int
	Shade      uint8 // Grey level of the facade
	WindowsLit []bool
	WindowCols int
	WindowRows int
}

// Generator creates the city backdrop drawn behind the road
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Skyline lays out buildings left to right until the width is covered.
// The same seed always gives the same skyline.
func (g *Generator) Skyline(seed int64) []Building {
	rng := rand.New(rand.NewSource(seed))
	var buildings []Building

	for x := 0; x < g.Width; {
		width := 24 + rng.Intn(36)
		height := g.Height/4 + rng.Intn(g.Height/2+1)

		cols := (width - 6) / 8
		rows := (height - 10) / 12
		if cols < 1 {
			cols = 1
		}
		if rows < 1 {
			rows = 1
		}

		lit := make([]bool, cols*rows)
		for i := range lit {
			lit[i] = rng.Float64() < 0.35
		}

		buildings = append(buildings, Building{
			X:          x,
			Width:      width,
			Height:     height,
			Shade:      uint8(30 + rng.Intn(40)),
			WindowsLit: lit,
			WindowCols: cols,
			WindowRows: rows,
		})
		x += width + rng.Intn(4)
	}

	return buildings
}

// GenerateCity renders a night skyline with lit windows
func (g *Generator) GenerateCity(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)

	// Night sky
	img.Fill(color.RGBA{12, 14, 30, 255})

	for _, b := range g.Skyline(seed) {
		g.drawBuilding(img, b)
	}

	return img
}

// drawBuilding draws one block with its window grid
func (g *Generator) drawBuilding(img *ebiten.Image, b Building) {
	top := float32(g.Height - b.Height)
	facade := color.RGBA{b.Shade, b.Shade, b.Shade + 10, 255}
	vector.DrawFilledRect(img, float32(b.X), top, float32(b.Width), float32(b.Height), facade, false)

	litColor := color.RGBA{255, 220, 120, 255}
	darkColor := color.RGBA{b.Shade / 2, b.Shade / 2, b.Shade / 2, 255}

	for row := 0; row < b.WindowRows; row++ {
		for col := 0; col < b.WindowCols; col++ {
			c := darkColor
			if b.WindowsLit[row*b.WindowCols+col] {
				c = litColor
			}
			wx := float32(b.X + 4 + col*8)
			wy := top + float32(6+row*12)
			vector.DrawFilledRect(img, wx, wy, 4, 6, c, false)
		}
	}
}
