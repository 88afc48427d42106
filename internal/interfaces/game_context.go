// internal/interfaces/game_context.go
package interfaces

// GameContext: то, что StateSystem вызывает у Game.
type GameContext interface {
	ClearEnemies()
	StartWave()
}
