package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonColor      = color.RGBA{40, 40, 60, 230}
	buttonHoverColor = color.RGBA{60, 100, 140, 240}
	buttonBorder     = color.RGBA{80, 80, 100, 255}
	buttonTextColor  = color.RGBA{255, 255, 255, 255}
)

var face = text.NewGoXFace(bitmapfont.Face)

// drawButton draws a button with background, border and centred label
func drawButton(screen *ebiten.Image, b Button, hovered bool) {
	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())

	bg := buttonColor
	if hovered {
		bg = buttonHoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorder, false)

	centerX := float64(x + w/2)
	centerY := float64(y + h/2)
	drawText(screen, b.Label, centerX, centerY, 16, buttonTextColor)
}

// drawText draws text centred on (centerX, centerY) at the given pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	// bitmapfont glyphs are 16px tall at scale 1
	scale := size / 16.0
	scaledWidth := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-scaledWidth/2, centerY-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
