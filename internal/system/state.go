// internal/system/state.go
package system

import (
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/interfaces"
)

// StateSystem переключает фазы игры по событиям уровня.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ss, event.LevelCompleted, event.GameOver)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelCompleted:
		s.SwitchToBuildState()
	case event.GameOver:
		s.SwitchToOverState()
	}
}

func (s *StateSystem) SwitchToBuildState() {
	s.ecs.GameState = component.BuildState
	s.gameContext.ClearEnemies()
}

// SwitchToWaveState запускает уровень. Повторный вызов во время волны ничего не делает.
func (s *StateSystem) SwitchToWaveState() bool {
	if s.ecs.GameState != component.BuildState {
		return false
	}
	s.ecs.GameState = component.WaveState
	s.gameContext.StartWave()
	return true
}

func (s *StateSystem) SwitchToOverState() {
	s.ecs.GameState = component.OverState
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}
