// internal/ui/button.go
package ui

import (
	"image/color"

	"go-waypoint-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Button представляет собой прямоугольную кнопку в боковой панели.
type Button struct {
	X, Y, W, H float32
	Text       string
	Enabled    bool
	TextColor  color.RGBA
	BgColor    color.RGBA
	OffColor   color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string) *Button {
	bg := color.RGBA{70, 130, 180, 220}
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:      label,
		Enabled:   true,
		TextColor: color.RGBA{240, 240, 240, 255},
		BgColor:   bg,
		OffColor:  render.WithAlpha(render.Darken(bg, 0.5), 160),
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// IsClicked: клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if !b.Enabled {
		bg = b.OffColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, b.TextColor, false)

	face := basicfont.Face7x13
	width := len(b.Text) * face.Advance
	tx := int(b.X) + (int(b.W)-width)/2
	ty := int(b.Y) + (int(b.H)+face.Ascent)/2
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
