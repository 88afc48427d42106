// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for one enemy type.
type EnemyDefinition struct {
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
}
