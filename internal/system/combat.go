package system

import (
	"errors"
	"fmt"
	"log"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
)

var ErrMaxUpgradeLevel = errors.New("turret is at max upgrade level")

// TierSource отдаёт параметры турели по уровню улучшения.
type TierSource interface {
	Tier(upgradeLevel int) (defs.TurretTier, error)
}

// TargetStatus различает "цели нет" и "цель уже снята с поля".
type TargetStatus int

const (
	NoTarget TargetStatus = iota
	TargetPresent
	TargetGone
)

// CombatSystem управляет захватом целей и стрельбой турелей
type CombatSystem struct {
	ecs             *entity.ECS
	cfg             *config.Config
	tiers           TierSource
	clock           utils.Clock
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, cfg *config.Config, tiers TierSource, clock utils.Clock, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		cfg:             cfg,
		tiers:           tiers,
		clock:           clock,
		eventDispatcher: eventDispatcher,
	}
}

// Update обновляет турели после того, как враги уже сдвинуты в этом тике.
func (s *CombatSystem) Update(gameSpeed float64) {
	for _, id := range s.ecs.TurretIDs() {
		if turret, ok := s.ecs.Turret(id); ok {
			s.UpdateTurret(id, turret, gameSpeed)
		}
	}
}

// UpdateTurret: пока цель захвачена, идёт анимация выстрела;
// иначе по истечении перезарядки ищется новая цель.
func (s *CombatSystem) UpdateTurret(id types.EntityID, t *component.Turret, gameSpeed float64) {
	if t.HasTarget() {
		s.PlayAnimation(t)
		return
	}
	if CooldownElapsed(t, s.clock.Ticks(), gameSpeed) {
		s.PickTarget(id, t)
	}
}

// CooldownElapsed: прошло больше cooldown/gameSpeed с последнего цикла.
// При нулевой скорости перезарядка не заканчивается.
func CooldownElapsed(t *component.Turret, now int64, gameSpeed float64) bool {
	if gameSpeed <= 0 {
		return false
	}
	return float64(now-t.LastShot) > float64(t.CooldownMs)/gameSpeed
}

// PickTarget берёт первого живого врага в радиусе в порядке реестра,
// не ближайшего. Урон наносится сразу при захвате.
func (s *CombatSystem) PickTarget(id types.EntityID, t *component.Turret) bool {
	if t.HasTarget() {
		return false
	}
	for _, enemyID := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemy(enemyID)
		if !ok || enemy.Health <= 0 {
			continue
		}
		d := enemy.Position.Sub(t.Position)
		if d.Length() > t.Range {
			continue
		}

		t.Target = enemyID
		t.Angle = utils.ScreenAngle(d.X, d.Y)
		ApplyDamage(enemy, s.cfg.Damage)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TurretFired,
			Data: event.ShotData{TurretID: id, TargetID: enemyID},
		})
		return true
	}
	return false
}

// PlayAnimation листает кадры с шагом AnimationDelayMs. Полный цикл
// сбрасывает цель и запускает перезарядку.
func (s *CombatSystem) PlayAnimation(t *component.Turret) {
	now := s.clock.Ticks()
	if now-t.LastFrameUpdate <= s.cfg.AnimationDelayMs {
		return
	}
	t.LastFrameUpdate = now
	t.FrameIndex++
	if t.FrameIndex >= s.cfg.AnimationSteps {
		t.FrameIndex = 0
		t.LastShot = now
		t.Target = 0
	}
}

// Upgrade поднимает уровень турели и перечитывает параметры из таблицы.
// Турель не меняется, если следующего уровня в таблице нет.
func (s *CombatSystem) Upgrade(t *component.Turret) error {
	tier, err := s.tiers.Tier(t.UpgradeLevel + 1)
	if err != nil {
		if errors.Is(err, defs.ErrUnknownTier) {
			return fmt.Errorf("%w: level %d", ErrMaxUpgradeLevel, t.UpgradeLevel)
		}
		return err
	}
	t.UpgradeLevel++
	t.ApplyTier(tier)
	log.Printf("Turret at (%d,%d) upgraded to level %d: range %.0f, cooldown %dms", t.TileX, t.TileY, t.UpgradeLevel, t.Range, t.CooldownMs)
	return nil
}

// TargetStatus сообщает, есть ли у турели цель и присутствует ли она ещё на поле.
func (s *CombatSystem) TargetStatus(t *component.Turret) TargetStatus {
	if !t.HasTarget() {
		return NoTarget
	}
	if _, ok := s.ecs.Enemy(t.Target); !ok {
		return TargetGone
	}
	return TargetPresent
}
