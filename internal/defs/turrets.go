// internal/defs/turrets.go
package defs

// TurretTier holds range and cooldown for one upgrade level.
// Tiers are indexed by upgrade level - 1.
type TurretTier struct {
	Range    float64 `yaml:"range"`
	Cooldown int64   `yaml:"cooldown"` // milliseconds
}
