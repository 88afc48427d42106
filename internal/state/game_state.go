// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	game "go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/ui"
	"go-waypoint-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var speedColors = []color.Color{
	color.RGBA{70, 130, 180, 255},
	color.RGBA{218, 165, 32, 255},
	color.RGBA{205, 92, 92, 255},
}

// GameState: основной экран: карта слева, панель справа.
type GameState struct {
	sm    *StateMachine
	game  *game.Game
	clock *utils.PausableClock

	infoPanel     *ui.InfoPanel
	startButton   *ui.Button
	upgradeButton *ui.Button
	restartButton *ui.Button
	speedButton   *ui.SpeedButton

	message string
}

func NewGameState(sm *StateMachine, g *game.Game, clock *utils.PausableClock) *GameState {
	cfg := g.Config
	panelX := float32(cfg.MapWidth())
	panelW := float32(cfg.SidePanel)
	h := float32(cfg.ScreenHeight())

	return &GameState{
		sm:            sm,
		game:          g,
		clock:         clock,
		infoPanel:     ui.NewInfoPanel(panelX, 0, panelW, h, config.PanelColor, config.TextLightColor),
		startButton:   ui.NewButton(panelX+20, h-200, panelW-40, 36, "Start level (Space)"),
		upgradeButton: ui.NewButton(panelX+20, h-150, panelW-40, 36, fmt.Sprintf("Upgrade $%d (U)", cfg.UpgradeCost)),
		restartButton: ui.NewButton(panelX+20, h-100, panelW-40, 36, "Restart (R)"),
		speedButton:   ui.NewSpeedButton(panelX+panelW-40, 260, 12, speedColors),
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s, s.clock))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.report(s.game.StartLevel())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		s.upgradeSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.cycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.report(s.game.Restart())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.ClearSelection()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.handleClick(x, y)
	}

	s.game.Update()
	s.refreshButtons()
	return nil
}

func (s *GameState) handleClick(x, y int) {
	switch {
	case s.startButton.IsClicked(x, y):
		s.report(s.game.StartLevel())
	case s.upgradeButton.IsClicked(x, y):
		s.upgradeSelected()
	case s.restartButton.IsClicked(x, y):
		s.report(s.game.Restart())
	case s.speedButton.IsClicked(x, y):
		s.cycleSpeed()
	default:
		s.report(s.game.HandleMapClick(x, y))
	}
}

func (s *GameState) upgradeSelected() {
	id := s.game.SelectedTurret()
	if id == 0 {
		s.message = "Select a turret first"
		return
	}
	s.report(s.game.UpgradeTurret(id))
}

func (s *GameState) cycleSpeed() {
	speed := s.game.CycleGameSpeed()
	s.speedButton.SetState(s.game.SpeedIndex())
	s.message = fmt.Sprintf("Speed x%g", speed)
}

// report показывает ошибку действия игрока в панели. Пустое сообщение
// стирает предыдущее.
func (s *GameState) report(err error) {
	if err == nil {
		s.message = ""
		return
	}
	if !errors.Is(err, game.ErrInsufficientFunds) && !errors.Is(err, game.ErrTileNotBuildable) {
		log.Printf("GameState: %v", err)
	}
	s.message = err.Error()
}

func (s *GameState) refreshButtons() {
	phase := s.game.Phase()
	s.startButton.Enabled = phase == component.BuildState
	s.upgradeButton.Enabled = phase != component.OverState && s.game.SelectedTurret() != 0
	s.speedButton.SetState(s.game.SpeedIndex())
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.game.RenderSystem.Draw(screen)

	w := s.game.World
	stats := ui.PanelStats{
		Level:       w.Level,
		TotalLevels: s.game.Config.TotalLevels,
		Health:      w.Health,
		Money:       w.Money,
		Killed:      w.KilledEnemies,
		Missed:      w.MissedEnemies,
		Spawned:     w.SpawnedEnemies,
		Total:       len(w.EnemyList),
		Speed:       w.GameSpeed,
		Phase:       s.game.Phase().String(),
		Message:     s.message,
	}
	if t, ok := s.game.ECS.Turret(s.game.SelectedTurret()); ok {
		stats.SelectedLevel = t.UpgradeLevel
	}
	if s.game.Phase() == component.OverState {
		if s.game.Won {
			stats.Message = "You won! Press R to play again"
		} else {
			stats.Message = "Game over. Press R to restart"
		}
	}
	s.infoPanel.Draw(screen, stats)
	s.startButton.Draw(screen)
	s.upgradeButton.Draw(screen)
	s.restartButton.Draw(screen)
	s.speedButton.Draw(screen)
}

func (s *GameState) Exit() {}
