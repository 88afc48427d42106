// internal/component/game_state.go
package component

// GameState: фаза игры
type GameState int

const (
	BuildState GameState = iota // ожидание старта уровня
	WaveState                   // уровень идёт
	OverState                   // игра окончена
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case OverState:
		return "over"
	default:
		return "unknown"
	}
}
