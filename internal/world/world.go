// internal/world/world.go
package world

import (
	"errors"
	"fmt"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/utils"
)

var ErrNegativeGameSpeed = errors.New("game speed must not be negative")

// World хранит путь, очередь появления врагов и глобальные счётчики уровня.
type World struct {
	Level     int
	GameSpeed float64
	Health    int
	Money     int

	TileMap   []int
	Waypoints []component.Vec2

	EnemyList      []string // порядок появления врагов на уровне
	SpawnedEnemies int
	KilledEnemies  int
	MissedEnemies  int

	cfg     *config.Config
	catalog *defs.Catalog
	rng     *utils.PRNGService
}

// New создаёт мир первого уровня со стартовыми здоровьем и деньгами.
func New(cfg *config.Config, catalog *defs.Catalog, rng *utils.PRNGService) *World {
	return &World{
		Level:     1,
		GameSpeed: 1,
		Health:    cfg.StartHealth,
		Money:     cfg.StartMoney,
		cfg:       cfg,
		catalog:   catalog,
		rng:       rng,
	}
}

// ProcessData достаёт из уровня карту тайлов и точки пути.
// Отсутствующие слои дают пустые данные.
func (w *World) ProcessData(data *level.Data) {
	w.TileMap = nil
	w.Waypoints = nil
	if data == nil {
		return
	}
	for _, layer := range data.Layers {
		switch layer.Name {
		case level.TilemapLayer:
			w.TileMap = layer.Data
		case level.WaypointsLayer:
			for _, obj := range layer.Objects {
				w.ProcessWaypoints(obj.AbsolutePolyline())
			}
		}
	}
}

// ProcessWaypoints добавляет точки {x, y} к пути, сохраняя порядок.
func (w *World) ProcessWaypoints(points []level.Point) {
	for _, p := range points {
		w.Waypoints = append(w.Waypoints, component.Vec2{X: p.X, Y: p.Y})
	}
}

// ProcessEnemies строит перемешанный список врагов текущего уровня.
func (w *World) ProcessEnemies() error {
	counts, err := w.catalog.LevelSpawns(w.Level)
	if err != nil {
		return fmt.Errorf("failed to build spawn list: %w", err)
	}
	w.EnemyList = counts.Expand()
	w.rng.ShuffleStrings(w.EnemyList)
	return nil
}

// CheckLevelComplete: все враги уровня убиты или пропущены.
func (w *World) CheckLevelComplete() bool {
	return w.KilledEnemies+w.MissedEnemies == len(w.EnemyList)
}

// ResetLevel очищает очередь и счётчики. Деньги, здоровье, путь,
// скорость и номер уровня не трогает.
func (w *World) ResetLevel() {
	w.EnemyList = nil
	w.SpawnedEnemies = 0
	w.KilledEnemies = 0
	w.MissedEnemies = 0
}

// RecordKill учитывает убитого врага и начисляет награду.
func (w *World) RecordKill() {
	w.KilledEnemies++
	w.Money += w.cfg.KillReward
}

// RecordMiss учитывает врага, дошедшего до конца пути.
func (w *World) RecordMiss() {
	w.Health--
	w.MissedEnemies++
}

// ForfeitSpawn закрывает запись очереди, которую не удалось заспавнить,
// чтобы уровень мог завершиться. Здоровье не отнимается.
func (w *World) ForfeitSpawn() {
	w.MissedEnemies++
}

// HasPendingSpawns: в очереди ещё есть враги.
func (w *World) HasPendingSpawns() bool {
	return w.SpawnedEnemies < len(w.EnemyList)
}

// NextSpawn отдаёт тип следующего врага и сдвигает очередь.
func (w *World) NextSpawn() (string, bool) {
	if !w.HasPendingSpawns() {
		return "", false
	}
	tag := w.EnemyList[w.SpawnedEnemies]
	w.SpawnedEnemies++
	return tag, true
}

// SetGameSpeed меняет множитель скорости. 0 замораживает движение и перезарядку.
func (w *World) SetGameSpeed(speed float64) error {
	if speed < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeGameSpeed, speed)
	}
	w.GameSpeed = speed
	return nil
}

// TileAt возвращает id тайла по координатам сетки.
func (w *World) TileAt(tileX, tileY int) (int, bool) {
	if tileX < 0 || tileY < 0 || tileX >= w.cfg.Cols || tileY >= w.cfg.Rows {
		return 0, false
	}
	i := tileY*w.cfg.Cols + tileX
	if i >= len(w.TileMap) {
		return 0, false
	}
	return w.TileMap[i], true
}

func (w *World) Catalog() *defs.Catalog {
	return w.catalog
}

// SetCatalog подменяет каталог. Вызывать между уровнями.
func (w *World) SetCatalog(c *defs.Catalog) {
	w.catalog = c
}

// Enemy ищет тип врага в текущем каталоге.
func (w *World) Enemy(tag string) (defs.EnemyDefinition, error) {
	return w.catalog.Enemy(tag)
}

// Tier ищет уровень турели в текущем каталоге.
func (w *World) Tier(upgradeLevel int) (defs.TurretTier, error) {
	return w.catalog.Tier(upgradeLevel)
}
