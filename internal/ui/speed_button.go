// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton: кнопка ускорения: цвет показывает текущий множитель.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Draw рисует два треугольника "перемотки"; после клика кнопка коротко пульсирует.
func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8

	vector.DrawFilledCircle(screen, b.X, b.Y, b.Size*1.5, clr, true)
	for _, dx := range []float32{0, offset} {
		x0 := b.X - width + dx - width/2
		triangle(screen, x0, b.Y-height/2, x0+width, b.Y, x0, b.Y+height/2)
	}
}

func triangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32) {
	white := color.White
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, white, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, 2, white, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, 2, white, true)
}

// IsClicked: попадание в круг вокруг кнопки, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState выставляет индекс множителя; вызов с новым значением запускает пульсацию.
func (b *SpeedButton) SetState(state int) {
	if state != b.CurrentState {
		b.LastClickTime = time.Now()
	}
	b.CurrentState = state
}
