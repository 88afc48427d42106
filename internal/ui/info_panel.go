// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 18

// PanelStats: то, что показывает боковая панель.
type PanelStats struct {
	Level, TotalLevels int
	Health, Money      int
	Killed, Missed     int
	Spawned, Total     int
	Speed              float64
	Phase              string
	SelectedLevel      int // 0: турель не выбрана
	Message            string
}

// InfoPanel: боковая панель со счётчиками уровня.
type InfoPanel struct {
	X, Y, W, H float32
	Bg         color.RGBA
	Fg         color.RGBA
}

func NewInfoPanel(x, y, w, h float32, bg, fg color.RGBA) *InfoPanel {
	return &InfoPanel{X: x, Y: y, W: w, H: h, Bg: bg, Fg: fg}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, s PanelStats) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.W, p.H, p.Bg, false)

	lines := []string{
		fmt.Sprintf("Level   %d / %d", s.Level, s.TotalLevels),
		fmt.Sprintf("Health  %d", s.Health),
		fmt.Sprintf("Money   %d", s.Money),
		fmt.Sprintf("Enemies %d / %d spawned", s.Spawned, s.Total),
		fmt.Sprintf("Killed  %d  Missed %d", s.Killed, s.Missed),
		fmt.Sprintf("Speed   x%g", s.Speed),
		fmt.Sprintf("Phase   %s", s.Phase),
	}
	if s.SelectedLevel > 0 {
		lines = append(lines, fmt.Sprintf("Turret  level %d", s.SelectedLevel))
	}
	if s.Message != "" {
		lines = append(lines, "", s.Message)
	}

	x := int(p.X) + 16
	y := int(p.Y) + 24
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, x, y, p.Fg)
		y += lineHeight
	}
}
