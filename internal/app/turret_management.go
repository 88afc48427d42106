// internal/app/turret_management.go
package app

import (
	"fmt"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
)

// PlaceTurret buys a turret on a buildable, free tile.
func (g *Game) PlaceTurret(tileX, tileY int) (types.EntityID, error) {
	if g.ECS.GameState == component.OverState {
		return 0, ErrGameOver
	}
	tile, ok := g.World.TileAt(tileX, tileY)
	if !ok || !g.Config.IsBuildable(tile) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrTileNotBuildable, tileX, tileY)
	}
	if _, taken := g.ECS.TurretAt(tileX, tileY); taken {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrTileOccupied, tileX, tileY)
	}
	if g.World.Money < g.Config.BuyCost {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, g.World.Money, g.Config.BuyCost)
	}
	tier, err := g.World.Tier(1)
	if err != nil {
		return 0, err
	}

	g.World.Money -= g.Config.BuyCost
	turret := component.NewTurret(tileX, tileY, g.Config.TileSize, tier, g.Clock.Ticks())
	id := g.ECS.AddTurret(turret)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretPlaced, Data: event.TurretData{ID: id, UpgradeLevel: turret.UpgradeLevel}})
	return id, nil
}

// UpgradeTurret buys the next tier for a turret.
func (g *Game) UpgradeTurret(id types.EntityID) error {
	if g.ECS.GameState == component.OverState {
		return ErrGameOver
	}
	turret, ok := g.ECS.Turret(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTurret, id)
	}
	if turret.UpgradeLevel >= g.World.Catalog().MaxUpgradeLevel() {
		return fmt.Errorf("%w: level %d", system.ErrMaxUpgradeLevel, turret.UpgradeLevel)
	}
	if g.World.Money < g.Config.UpgradeCost {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, g.World.Money, g.Config.UpgradeCost)
	}
	if err := g.CombatSystem.Upgrade(turret); err != nil {
		return err
	}
	g.World.Money -= g.Config.UpgradeCost
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurretUpgraded, Data: event.TurretData{ID: id, UpgradeLevel: turret.UpgradeLevel}})
	return nil
}

// SelectTurret marks a turret as selected; its range is drawn.
func (g *Game) SelectTurret(id types.EntityID) error {
	turret, ok := g.ECS.Turret(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTurret, id)
	}
	g.ClearSelection()
	turret.Selected = true
	g.selectedTurret = id
	return nil
}

func (g *Game) ClearSelection() {
	if t, ok := g.ECS.Turret(g.selectedTurret); ok {
		t.Selected = false
	}
	g.selectedTurret = 0
}

// SelectedTurret returns the selected turret id, 0 when nothing is selected.
func (g *Game) SelectedTurret() types.EntityID {
	if _, ok := g.ECS.Turret(g.selectedTurret); !ok {
		return 0
	}
	return g.selectedTurret
}

// TileAtPixel converts screen coordinates to a tile on the map.
func (g *Game) TileAtPixel(x, y int) (int, int, bool) {
	if x < 0 || y < 0 || x >= g.Config.MapWidth() || y >= g.Config.MapHeight() {
		return 0, 0, false
	}
	return x / g.Config.TileSize, y / g.Config.TileSize, true
}

// HandleMapClick selects the turret on the tile, or builds one there.
func (g *Game) HandleMapClick(x, y int) error {
	tx, ty, ok := g.TileAtPixel(x, y)
	if !ok {
		return nil
	}
	if id, taken := g.ECS.TurretAt(tx, ty); taken {
		return g.SelectTurret(id)
	}
	g.ClearSelection()
	_, err := g.PlaceTurret(tx, ty)
	return err
}
