// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/internal/world"

	"github.com/google/uuid"
)

var (
	ErrGameOver          = errors.New("game is over")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrTileNotBuildable  = errors.New("tile is not buildable")
	ErrTileOccupied      = errors.New("tile already has a turret")
	ErrUnknownTurret     = errors.New("unknown turret")
)

// Game holds the simulation state and runs one tick per frame.
type Game struct {
	RunID           uuid.UUID
	Config          *config.Config
	ECS             *entity.ECS
	World           *world.World
	Clock           utils.Clock
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	WaveSystem      *system.WaveSystem
	StateSystem     *system.StateSystem
	RenderSystem    *system.RenderSystem
	Won             bool

	selectedTurret types.EntityID
	speedIndex     int
	pendingCatalog *defs.Catalog
}

// NewGame builds the world from level data and prepares the first level's spawn list.
func NewGame(cfg *config.Config, catalog *defs.Catalog, levelData *level.Data, clock utils.Clock) (*Game, error) {
	if cfg == nil || catalog == nil || clock == nil {
		return nil, errors.New("config, catalog and clock are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(cfg.Seed)
	w := world.New(cfg, catalog, rng)
	w.ProcessData(levelData)
	if len(w.Waypoints) < 2 {
		return nil, fmt.Errorf("level: %w, got %d", component.ErrTooFewWaypoints, len(w.Waypoints))
	}
	if err := w.SetGameSpeed(cfg.GameSpeeds[0]); err != nil {
		return nil, err
	}
	if err := w.ProcessEnemies(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		RunID:           uuid.New(),
		Config:          cfg,
		ECS:             ecs,
		World:           w,
		Clock:           clock,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		MovementSystem:  system.NewMovementSystem(ecs, w, eventDispatcher),
		CombatSystem:    system.NewCombatSystem(ecs, cfg, w, clock, eventDispatcher),
		WaveSystem:      system.NewWaveSystem(ecs, w, cfg, clock, eventDispatcher),
		RenderSystem:    system.NewRenderSystem(ecs, w, cfg),
	}
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)

	g.logf("New game: seed %d, %d waypoints, %d enemies on level 1", rng.Seed(), len(w.Waypoints), len(w.EnemyList))
	return g, nil
}

// Update runs one tick: spawning, then every enemy, then every turret
// against the enemies that are still on the field, then level bookkeeping.
func (g *Game) Update() {
	if g.ECS.GameState == component.OverState {
		return
	}
	if g.ECS.GameState == component.WaveState {
		g.WaveSystem.Update()
	}
	g.MovementSystem.Update()
	g.CombatSystem.Update(g.World.GameSpeed)
	g.checkProgress()
}

func (g *Game) checkProgress() {
	if g.World.Health <= 0 {
		g.finish(false)
		return
	}
	if g.ECS.GameState != component.WaveState || !g.World.CheckLevelComplete() {
		return
	}

	completed := g.World.Level
	g.World.Money += g.Config.LevelCompleteReward
	g.World.Level++
	g.World.ResetLevel()
	g.logf("Level %d complete, money %d, health %d", completed, g.World.Money, g.World.Health)
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: completed}})

	if g.World.Level > g.Config.TotalLevels {
		g.finish(true)
		return
	}
	g.applyPendingCatalog()
	if err := g.World.ProcessEnemies(); err != nil {
		g.logf("No spawn data for level %d: %v", g.World.Level, err)
		g.finish(true)
	}
}

func (g *Game) finish(won bool) {
	g.Won = won
	g.logf("Game over: won=%t, level %d", won, g.World.Level)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{Won: won, Level: g.World.Level}})
}

// StartLevel releases the current level's enemies.
func (g *Game) StartLevel() error {
	if g.ECS.GameState == component.OverState {
		return ErrGameOver
	}
	g.StateSystem.SwitchToWaveState()
	return nil
}

// StartWave implements interfaces.GameContext.
func (g *Game) StartWave() {
	g.WaveSystem.Start()
	g.logf("Level %d started: %d enemies", g.World.Level, len(g.World.EnemyList))
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelData{Level: g.World.Level}})
}

// ClearEnemies implements interfaces.GameContext.
func (g *Game) ClearEnemies() {
	g.ECS.ClearEnemies()
}

// CycleGameSpeed steps to the next configured speed multiplier.
func (g *Game) CycleGameSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(g.Config.GameSpeeds)
	_ = g.World.SetGameSpeed(g.Config.GameSpeeds[g.speedIndex])
	return g.World.GameSpeed
}

// ReloadCatalog swaps in new catalog data. Mid-level the swap waits for
// the next level boundary so the running spawn list stays consistent.
func (g *Game) ReloadCatalog(c *defs.Catalog) {
	g.pendingCatalog = c
	if g.ECS.GameState == component.BuildState {
		g.applyPendingCatalog()
		g.World.ResetLevel()
		if err := g.World.ProcessEnemies(); err != nil {
			g.logf("Catalog reload: %v", err)
		}
	}
}

func (g *Game) applyPendingCatalog() {
	if g.pendingCatalog == nil {
		return
	}
	g.World.SetCatalog(g.pendingCatalog)
	g.pendingCatalog = nil
	for _, id := range g.ECS.TurretIDs() {
		t, _ := g.ECS.Turret(id)
		tier, err := g.World.Tier(t.UpgradeLevel)
		if err != nil {
			g.logf("Catalog reload: turret %d: %v", id, err)
			continue
		}
		t.ApplyTier(tier)
	}
	g.logf("Catalog reloaded")
}

// Restart returns to level 1 with starting money and health.
func (g *Game) Restart() error {
	g.ECS.ClearEnemies()
	g.ECS.ClearTurrets()
	g.selectedTurret = 0
	g.speedIndex = 0
	g.Won = false

	g.applyPendingCatalog()
	g.World.Level = 1
	g.World.Health = g.Config.StartHealth
	g.World.Money = g.Config.StartMoney
	_ = g.World.SetGameSpeed(g.Config.GameSpeeds[0])
	g.World.ResetLevel()
	if err := g.World.ProcessEnemies(); err != nil {
		return err
	}
	g.ECS.GameState = component.BuildState
	g.logf("Restarted")
	return nil
}

// SpeedIndex is the position of the current speed in Config.GameSpeeds.
func (g *Game) SpeedIndex() int {
	return g.speedIndex
}

// Phase is the current game phase.
func (g *Game) Phase() component.GameState {
	return g.ECS.GameState
}

func (g *Game) logf(format string, args ...any) {
	log.Printf("[run %s] "+format, append([]any{g.RunID.String()[:8]}, args...)...)
}
