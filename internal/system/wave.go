// internal/system/wave.go
package system

import (
	"fmt"
	"log"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/internal/world"
)

// WaveSystem выпускает врагов из очереди мира с интервалом SpawnCooldownMs.
type WaveSystem struct {
	ecs             *entity.ECS
	world           *world.World
	cfg             *config.Config
	clock           utils.Clock
	eventDispatcher *event.Dispatcher
	lastSpawn       int64
}

func NewWaveSystem(ecs *entity.ECS, w *world.World, cfg *config.Config, clock utils.Clock, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		world:           w,
		cfg:             cfg,
		clock:           clock,
		eventDispatcher: eventDispatcher,
	}
}

// Start отсчитывает интервал появления от текущего момента.
func (s *WaveSystem) Start() {
	s.lastSpawn = s.clock.Ticks()
}

func (s *WaveSystem) Update() {
	if !s.world.HasPendingSpawns() {
		return
	}
	speed := s.world.GameSpeed
	if speed <= 0 {
		return
	}
	now := s.clock.Ticks()
	if float64(now-s.lastSpawn) <= float64(s.cfg.SpawnCooldownMs)/speed {
		return
	}

	tag, _ := s.world.NextSpawn()
	if _, err := s.spawnEnemy(tag); err != nil {
		log.Printf("Error: %v", err)
		s.world.ForfeitSpawn()
	}
	s.lastSpawn = now
}

func (s *WaveSystem) spawnEnemy(tag string) (types.EntityID, error) {
	def, err := s.world.Enemy(tag)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn enemy: %w", err)
	}
	enemy, err := component.NewEnemy(tag, def, s.world.Waypoints)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn enemy: %w", err)
	}
	id := s.ecs.AddEnemy(enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: id, Type: tag}})
	return id, nil
}
