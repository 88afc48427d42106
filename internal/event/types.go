// internal/event/types.go
package event

import "go-waypoint-defense/internal/types"

const (
	EnemySpawned   EventType = "EnemySpawned"   // Враг вышел на путь
	EnemyKilled    EventType = "EnemyKilled"    // Враг уничтожен
	EnemyMissed    EventType = "EnemyMissed"    // Враг дошёл до конца пути
	TurretFired    EventType = "TurretFired"    // Турель захватила цель и выстрелила
	TurretPlaced   EventType = "TurretPlaced"   // Турель построена
	TurretUpgraded EventType = "TurretUpgraded" // Турель улучшена
	LevelStarted   EventType = "LevelStarted"
	LevelCompleted EventType = "LevelCompleted" // Все враги уровня обработаны
	GameOver       EventType = "GameOver"
)

// EnemyData — данные событий врага.
type EnemyData struct {
	ID   types.EntityID
	Type string
}

// ShotData — данные выстрела.
type ShotData struct {
	TurretID types.EntityID
	TargetID types.EntityID
}

// TurretData — данные событий турели.
type TurretData struct {
	ID           types.EntityID
	UpgradeLevel int
}

// LevelData — номер уровня.
type LevelData struct {
	Level int
}

// GameOverData — итог партии.
type GameOverData struct {
	Won   bool
	Level int
}
