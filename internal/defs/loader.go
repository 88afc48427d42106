// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var dataFS embed.FS

const defaultCatalogPath = "data/catalog.yaml"

var (
	ErrUnknownEnemyType = errors.New("unknown enemy type")
	ErrUnknownLevel     = errors.New("unknown level")
	ErrUnknownTier      = errors.New("unknown turret tier")
)

// Catalog is the static game data: enemy types, turret tiers and
// per-level spawn counts.
type Catalog struct {
	Enemies map[string]EnemyDefinition `yaml:"enemies"`
	Turrets []TurretTier               `yaml:"turrets"`
	Spawns  []SpawnCounts              `yaml:"spawns"`
}

// LoadCatalog reads a catalog from path, or the embedded catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = dataFS.ReadFile(defaultCatalogPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy types, %d turret tiers, %d levels", len(c.Enemies), len(c.Turrets), len(c.Spawns))
	return c, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog("")
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects data the simulation cannot run on.
func (c *Catalog) Validate() error {
	var errs []error
	for tag, def := range c.Enemies {
		if def.Health <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: health must be positive, got %d", tag, def.Health))
		}
		if def.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: speed must be positive, got %v", tag, def.Speed))
		}
	}
	if len(c.Turrets) == 0 {
		errs = append(errs, errors.New("at least one turret tier is required"))
	}
	for i, t := range c.Turrets {
		if t.Range < 0 || t.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("turret tier %d: range and cooldown must not be negative", i+1))
		}
	}
	for i, level := range c.Spawns {
		for tag, n := range level {
			if _, ok := c.Enemies[tag]; !ok {
				errs = append(errs, fmt.Errorf("level %d: %w %q", i+1, ErrUnknownEnemyType, tag))
			}
			if n < 0 {
				errs = append(errs, fmt.Errorf("level %d: negative count for %q", i+1, tag))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// Enemy looks up an enemy type.
func (c *Catalog) Enemy(tag string) (EnemyDefinition, error) {
	def, ok := c.Enemies[tag]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemyType, tag)
	}
	return def, nil
}

// Tier returns the turret tier for a 1-based upgrade level.
func (c *Catalog) Tier(upgradeLevel int) (TurretTier, error) {
	if upgradeLevel < 1 || upgradeLevel > len(c.Turrets) {
		return TurretTier{}, fmt.Errorf("%w: %d", ErrUnknownTier, upgradeLevel)
	}
	return c.Turrets[upgradeLevel-1], nil
}

// MaxUpgradeLevel is the highest upgrade level the tier table covers.
func (c *Catalog) MaxUpgradeLevel() int {
	return len(c.Turrets)
}

// LevelSpawns returns the spawn counts for a 1-based level.
func (c *Catalog) LevelSpawns(level int) (SpawnCounts, error) {
	if level < 1 || level > len(c.Spawns) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}
	return c.Spawns[level-1], nil
}
