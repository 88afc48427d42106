// internal/system/render.go
package system

import (
	"math"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/world"
	"go-waypoint-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует карту, путь, турели и врагов
type RenderSystem struct {
	ecs   *entity.ECS
	world *world.World
	cfg   *config.Config
}

func NewRenderSystem(ecs *entity.ECS, w *world.World, cfg *config.Config) *RenderSystem {
	return &RenderSystem{ecs: ecs, world: w, cfg: cfg}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawTiles(screen)
	s.drawPath(screen)

	for _, id := range s.ecs.TurretIDs() {
		if t, ok := s.ecs.Turret(id); ok {
			s.drawTurret(screen, t)
		}
	}
	for _, id := range s.ecs.EnemyIDs() {
		if e, ok := s.ecs.Enemy(id); ok {
			s.drawEnemy(screen, e)
		}
	}
}

func (s *RenderSystem) drawTiles(screen *ebiten.Image) {
	size := float32(s.cfg.TileSize)
	for y := 0; y < s.cfg.Rows; y++ {
		for x := 0; x < s.cfg.Cols; x++ {
			tile, ok := s.world.TileAt(x, y)
			clr := config.BlockedColor
			if ok && s.cfg.IsBuildable(tile) {
				clr = config.BuildableColor
			}
			vector.DrawFilledRect(screen, float32(x)*size+1, float32(y)*size+1, size-2, size-2, clr, false)
		}
	}
}

func (s *RenderSystem) drawPath(screen *ebiten.Image) {
	wps := s.world.Waypoints
	for i := 0; i+1 < len(wps); i++ {
		vector.StrokeLine(screen, float32(wps[i].X), float32(wps[i].Y), float32(wps[i+1].X), float32(wps[i+1].Y), config.PathWidth, config.PathColor, true)
	}
}

func (s *RenderSystem) drawTurret(screen *ebiten.Image, t *component.Turret) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	if t.Selected {
		vector.DrawFilledCircle(screen, x, y, float32(t.Range), config.RangeColor, true)
	}
	body := config.TurretColor
	if t.HasTarget() {
		body = config.TurretFiringColor
	}
	vector.DrawFilledCircle(screen, x, y, config.TurretRadius+2, config.TurretStroke, true)
	vector.DrawFilledCircle(screen, x, y, config.TurretRadius, body, true)

	// Ствол; длина растёт с уровнем
	length := config.TurretRadius + 4*float64(t.UpgradeLevel)
	ex, ey := facing(t.Position, t.Angle, length)
	vector.StrokeLine(screen, x, y, ex, ey, 4, config.TurretStroke, true)
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	clr, ok := config.EnemyColors[e.Type]
	if !ok {
		clr = config.DefaultEnemyColor
	}
	x, y := float32(e.Position.X), float32(e.Position.Y)
	vector.DrawFilledCircle(screen, x, y, config.EnemyRadius+2, render.Darken(clr, 0.5), true)
	vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, clr, true)
	ex, ey := facing(e.Position, e.Angle, config.EnemyRadius+4)
	vector.StrokeLine(screen, x, y, ex, ey, 2, config.TextLightColor, true)
}

// facing: конец отрезка длины length от p в направлении angle (градусы, ось Y вниз).
func facing(p component.Vec2, angle, length float64) (float32, float32) {
	rad := angle * math.Pi / 180
	return float32(p.X + math.Cos(rad)*length), float32(p.Y - math.Sin(rad)*length)
}
