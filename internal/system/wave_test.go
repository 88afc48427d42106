package system

import (
	"testing"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/utils"
)

func TestWaveSystemSpawnPacing(t *testing.T) {
	w, cfg := newTestWorld(t)
	w.EnemyList = []string{"weak", "medium"}
	ecs := entity.NewECS()
	clock := utils.NewManualClock(1000)
	d := event.NewDispatcher()
	var spawned []string
	d.SubscribeFunc(func(e event.Event) {
		spawned = append(spawned, e.Data.(event.EnemyData).Type)
	}, event.EnemySpawned)

	waves := NewWaveSystem(ecs, w, cfg, clock, d)
	waves.Start()

	clock.Advance(cfg.SpawnCooldownMs)
	waves.Update()
	if ecs.EnemyCount() != 0 {
		t.Fatalf("spawned before the cooldown elapsed")
	}

	clock.Advance(1)
	waves.Update()
	if ecs.EnemyCount() != 1 || w.SpawnedEnemies != 1 {
		t.Fatalf("expected one spawn, got %d enemies, %d spawned", ecs.EnemyCount(), w.SpawnedEnemies)
	}
	enemy, _ := ecs.Enemy(ecs.EnemyIDs()[0])
	if enemy.Position != w.Waypoints[0] || enemy.Type != "weak" {
		t.Fatalf("unexpected spawn %+v", enemy)
	}

	// Двойная скорость: интервал вдвое короче.
	_ = w.SetGameSpeed(2)
	clock.Advance(cfg.SpawnCooldownMs/2 + 1)
	waves.Update()
	if ecs.EnemyCount() != 2 {
		t.Fatalf("expected second spawn at double speed, got %d", ecs.EnemyCount())
	}

	clock.Advance(10 * cfg.SpawnCooldownMs)
	waves.Update()
	if ecs.EnemyCount() != 2 || w.HasPendingSpawns() {
		t.Fatalf("queue should be exhausted")
	}
	if len(spawned) != 2 || spawned[0] != "weak" || spawned[1] != "medium" {
		t.Fatalf("unexpected spawn events %v", spawned)
	}
}

func TestWaveSystemFrozenAtZeroSpeed(t *testing.T) {
	w, cfg := newTestWorld(t)
	w.EnemyList = []string{"weak"}
	_ = w.SetGameSpeed(0)
	ecs := entity.NewECS()
	clock := utils.NewManualClock(0)
	waves := NewWaveSystem(ecs, w, cfg, clock, event.NewDispatcher())
	waves.Start()

	clock.Advance(100 * cfg.SpawnCooldownMs)
	waves.Update()
	if ecs.EnemyCount() != 0 {
		t.Fatalf("nothing spawns while the game is frozen")
	}
}

func TestWaveSystemForfeitsBadEntry(t *testing.T) {
	w, cfg := newTestWorld(t)
	w.EnemyList = []string{"ghost"}
	ecs := entity.NewECS()
	clock := utils.NewManualClock(0)
	waves := NewWaveSystem(ecs, w, cfg, clock, event.NewDispatcher())
	waves.Start()

	clock.Advance(cfg.SpawnCooldownMs + 1)
	waves.Update()
	if ecs.EnemyCount() != 0 {
		t.Fatalf("unknown enemy type must not spawn")
	}
	if w.MissedEnemies != 1 || w.Health != cfg.StartHealth {
		t.Fatalf("forfeited entry counts as missed without damage, got missed=%d health=%d", w.MissedEnemies, w.Health)
	}
	if !w.CheckLevelComplete() {
		t.Fatalf("level should be able to complete after a forfeited spawn")
	}
}

type fakeGameContext struct {
	cleared, started int
}

func (f *fakeGameContext) ClearEnemies() { f.cleared++ }
func (f *fakeGameContext) StartWave()    { f.started++ }

func TestStateSystemTransitions(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ctx := &fakeGameContext{}
	s := NewStateSystem(ecs, ctx, d)

	if s.Current() != component.BuildState {
		t.Fatalf("expected build state, got %v", s.Current())
	}
	if !s.SwitchToWaveState() || ctx.started != 1 {
		t.Fatalf("expected wave to start")
	}
	if s.SwitchToWaveState() || ctx.started != 1 {
		t.Fatalf("starting a running wave must be a no-op")
	}

	d.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: 1}})
	if s.Current() != component.BuildState || ctx.cleared != 1 {
		t.Fatalf("level completion should return to build and clear enemies")
	}

	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{}})
	if s.Current() != component.OverState {
		t.Fatalf("expected over state, got %v", s.Current())
	}
	if s.SwitchToWaveState() {
		t.Fatalf("cannot start a wave after game over")
	}
}
