// internal/system/movement.go
package system

import (
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/internal/world"
)

// Outcome: итог обновления врага за тик.
type Outcome int

const (
	Alive  Outcome = iota
	Missed         // прошёл последнюю точку пути
	Killed         // здоровье <= 0
)

func (o Outcome) String() string {
	switch o {
	case Alive:
		return "alive"
	case Missed:
		return "missed"
	case Killed:
		return "killed"
	default:
		return "unknown"
	}
}

// MovementSystem двигает врагов и разбирает их исходы:
// снимает с поля и пишет счётчики мира.
type MovementSystem struct {
	ecs             *entity.ECS
	world           *world.World
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, w *world.World, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, world: w, eventDispatcher: eventDispatcher}
}

// Update обновляет всех врагов в порядке реестра.
func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemy(id)
		if !ok {
			continue
		}
		s.resolve(id, enemy, UpdateEnemy(enemy, s.world.GameSpeed))
	}
}

func (s *MovementSystem) resolve(id types.EntityID, enemy *component.Enemy, outcome Outcome) {
	switch outcome {
	case Missed:
		if s.ecs.RemoveEnemy(id) {
			s.world.RecordMiss()
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyMissed, Data: event.EnemyData{ID: id, Type: enemy.Type}})
		}
	case Killed:
		if s.ecs.RemoveEnemy(id) {
			s.world.RecordKill()
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: id, Type: enemy.Type}})
		}
	}
}

// UpdateEnemy: move, rotate, checkAlive строго в этом порядке.
// Враг, ушедший с пути, дальше в этом тике не проверяется.
func UpdateEnemy(e *component.Enemy, gameSpeed float64) Outcome {
	if Move(e, gameSpeed) == Missed {
		return Missed
	}
	Rotate(e)
	return CheckAlive(e)
}

// Move сдвигает врага к целевой точке на speed*gameSpeed.
// Если до точки ближе шага, враг встаёт в неё и берёт следующую.
// Если путь уже пройден, враг не двигается и возвращается Missed.
func Move(e *component.Enemy, gameSpeed float64) Outcome {
	if e.PathExhausted() {
		return Missed
	}

	movement := e.Waypoints[e.TargetWaypoint].Sub(e.Position)
	dist := movement.Length()
	step := e.Speed * gameSpeed

	if dist >= step {
		e.Position = e.Position.Add(movement.Normalize().Scale(step))
		return Alive
	}
	if dist != 0 {
		e.Position = e.Position.Add(movement.Normalize().Scale(dist))
	}
	e.TargetWaypoint++
	return Alive
}

// Rotate поворачивает врага к целевой точке. Если враг стоит точно
// в ней, угол не меняется.
func Rotate(e *component.Enemy) {
	d := e.Target().Sub(e.Position)
	if d.X == 0 && d.Y == 0 {
		return
	}
	e.Angle = utils.ScreenAngle(d.X, d.Y)
}

// CheckAlive: Killed, если здоровье <= 0.
func CheckAlive(e *component.Enemy) Outcome {
	if e.Health <= 0 {
		return Killed
	}
	return Alive
}
