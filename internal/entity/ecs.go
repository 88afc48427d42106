// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/types"
)

// ECS: реестр активных врагов и поставленных турелей.
// Обход идёт в порядке добавления, как в группе спрайтов.
type ECS struct {
	NextID    types.EntityID
	Enemies   map[types.EntityID]*component.Enemy
	Turrets   map[types.EntityID]*component.Turret
	GameState component.GameState

	enemyOrder  []types.EntityID
	turretOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		Enemies:   make(map[types.EntityID]*component.Enemy),
		Turrets:   make(map[types.EntityID]*component.Turret),
		GameState: component.BuildState,
	}
}

// NewEntity выдаёт новый идентификатор. Идентификаторы не переиспользуются,
// поэтому устаревшая ссылка никогда не укажет на чужую сущность.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = e
	ecs.enemyOrder = append(ecs.enemyOrder, id)
	return id
}

// RemoveEnemy удаляет врага из игры. Возвращает false, если его уже нет.
func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	delete(ecs.Enemies, id)
	if i := slices.Index(ecs.enemyOrder, id); i >= 0 {
		ecs.enemyOrder = slices.Delete(ecs.enemyOrder, i, i+1)
	}
	return true
}

func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies[id]
	return e, ok
}

// EnemyIDs: копия порядка обхода; удаление во время обхода безопасно.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return slices.Clone(ecs.enemyOrder)
}

func (ecs *ECS) EnemyCount() int {
	return len(ecs.enemyOrder)
}

func (ecs *ECS) ClearEnemies() {
	clear(ecs.Enemies)
	ecs.enemyOrder = ecs.enemyOrder[:0]
}

func (ecs *ECS) AddTurret(t *component.Turret) types.EntityID {
	id := ecs.NewEntity()
	ecs.Turrets[id] = t
	ecs.turretOrder = append(ecs.turretOrder, id)
	return id
}

func (ecs *ECS) Turret(id types.EntityID) (*component.Turret, bool) {
	t, ok := ecs.Turrets[id]
	return t, ok
}

func (ecs *ECS) TurretIDs() []types.EntityID {
	return slices.Clone(ecs.turretOrder)
}

// TurretAt ищет турель на тайле.
func (ecs *ECS) TurretAt(tileX, tileY int) (types.EntityID, bool) {
	for _, id := range ecs.turretOrder {
		t := ecs.Turrets[id]
		if t.TileX == tileX && t.TileY == tileY {
			return id, true
		}
	}
	return 0, false
}

func (ecs *ECS) ClearTurrets() {
	clear(ecs.Turrets)
	ecs.turretOrder = ecs.turretOrder[:0]
}
