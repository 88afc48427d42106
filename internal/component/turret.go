// internal/component/turret.go
package component

import (
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/types"
)

// InitialTurretAngle: турель смотрит вверх, пока не выстрелит.
const InitialTurretAngle = 90.0

// Turret: стационарная турель на тайле.
type Turret struct {
	TileX, TileY int
	Position     Vec2 // центр тайла
	UpgradeLevel int  // >= 1, индекс в таблице уровней + 1
	Range        float64
	CooldownMs   int64
	LastShot     int64 // показание часов в конце последнего цикла стрельбы
	// Target: цель по идентификатору, турель не владеет врагом.
	Target          types.EntityID
	FrameIndex      int
	LastFrameUpdate int64
	Angle           float64
	Selected        bool
}

// NewTurret ставит турель в центр тайла. Перезарядка отсчитывается от now.
func NewTurret(tileX, tileY, tileSize int, tier defs.TurretTier, now int64) *Turret {
	size := float64(tileSize)
	return &Turret{
		TileX:           tileX,
		TileY:           tileY,
		Position:        Vec2{X: (float64(tileX) + 0.5) * size, Y: (float64(tileY) + 0.5) * size},
		UpgradeLevel:    1,
		Range:           tier.Range,
		CooldownMs:      tier.Cooldown,
		LastShot:        now,
		LastFrameUpdate: now,
		Angle:           InitialTurretAngle,
	}
}

// HasTarget: турель захватила цель и проигрывает анимацию выстрела.
func (t *Turret) HasTarget() bool {
	return t.Target != 0
}

// ApplyTier переписывает параметры, зависящие от уровня.
func (t *Turret) ApplyTier(tier defs.TurretTier) {
	t.Range = tier.Range
	t.CooldownMs = tier.Cooldown
}
