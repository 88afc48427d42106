// internal/component/enemy.go
package component

import (
	"errors"
	"fmt"

	"go-waypoint-defense/internal/defs"
)

var (
	ErrTooFewWaypoints = errors.New("path needs at least two waypoints")
	ErrInvalidSpeed    = errors.New("enemy speed must be positive")
)

// Enemy: враг, идущий по точкам пути.
type Enemy struct {
	Type           string
	Position       Vec2
	Waypoints      []Vec2 // общий путь мира, только для чтения
	TargetWaypoint int    // индекс следующей точки, >= 1
	Health         int
	Speed          float64
	Angle          float64 // градусы, экранная система координат
}

// NewEnemy ставит врага в первую точку пути и направляет ко второй.
func NewEnemy(enemyType string, def defs.EnemyDefinition, waypoints []Vec2) (*Enemy, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("enemy %q: %w, got %d", enemyType, ErrTooFewWaypoints, len(waypoints))
	}
	if def.Speed <= 0 {
		return nil, fmt.Errorf("enemy %q: %w, got %v", enemyType, ErrInvalidSpeed, def.Speed)
	}
	return &Enemy{
		Type:           enemyType,
		Position:       waypoints[0],
		Waypoints:      waypoints,
		TargetWaypoint: 1,
		Health:         def.Health,
		Speed:          def.Speed,
	}, nil
}

// PathExhausted: враг прошёл последнюю точку.
func (e *Enemy) PathExhausted() bool {
	return e.TargetWaypoint >= len(e.Waypoints)
}

// Target: текущая целевая точка; после конца пути это последняя точка.
func (e *Enemy) Target() Vec2 {
	if e.PathExhausted() {
		return e.Waypoints[len(e.Waypoints)-1]
	}
	return e.Waypoints[e.TargetWaypoint]
}

// RemainingDistance: длина оставшегося пути до последней точки.
func (e *Enemy) RemainingDistance() float64 {
	if e.PathExhausted() {
		return 0
	}
	d := e.Position.DistanceTo(e.Waypoints[e.TargetWaypoint])
	for i := e.TargetWaypoint; i+1 < len(e.Waypoints); i++ {
		d += e.Waypoints[i].DistanceTo(e.Waypoints[i+1])
	}
	return d
}
