// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WindowTitle  = "Waypoint Defense"
	EnvPrefix    = "TD"
	RangeAlpha   = 100
	PathWidth    = 3.0
	EnemyRadius  = 10.0
	TurretRadius = 16.0
)

// Config: игровые константы. Передаётся в конструкторы явно.
type Config struct {
	TileSize  int `mapstructure:"tile_size"`
	Rows      int `mapstructure:"rows"`
	Cols      int `mapstructure:"cols"`
	SidePanel int `mapstructure:"side_panel"`

	StartHealth         int `mapstructure:"start_health"`
	StartMoney          int `mapstructure:"start_money"`
	KillReward          int `mapstructure:"kill_reward"`
	LevelCompleteReward int `mapstructure:"level_complete_reward"`
	BuyCost             int `mapstructure:"buy_cost"`
	UpgradeCost         int `mapstructure:"upgrade_cost"`
	TotalLevels         int `mapstructure:"total_levels"`

	Damage           int   `mapstructure:"damage"`
	AnimationSteps   int   `mapstructure:"animation_steps"`
	AnimationDelayMs int64 `mapstructure:"animation_delay_ms"`
	SpawnCooldownMs  int64 `mapstructure:"spawn_cooldown_ms"`

	BuildableTiles []int     `mapstructure:"buildable_tiles"`
	GameSpeeds     []float64 `mapstructure:"game_speeds"`

	Seed         int64  `mapstructure:"seed"`
	LevelFile    string `mapstructure:"level_file"`
	CatalogFile  string `mapstructure:"catalog_file"`
	WatchCatalog bool   `mapstructure:"watch_catalog"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		TileSize:  48,
		Rows:      15,
		Cols:      15,
		SidePanel: 300,

		StartHealth:         100,
		StartMoney:          650,
		KillReward:          1,
		LevelCompleteReward: 100,
		BuyCost:             200,
		UpgradeCost:         100,
		TotalLevels:         15,

		Damage:           5,
		AnimationSteps:   8,
		AnimationDelayMs: 15,
		SpawnCooldownMs:  400,

		BuildableTiles: []int{7},
		GameSpeeds:     []float64{1, 2, 4},
	}
}

// RegisterFlags объявляет флаги командной строки, которые перекрывают файл и окружение.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.Int64("seed", 0, "spawn shuffle seed (0 = time based)")
	fs.String("level", "", "path to a Tiled level file (embedded level when empty)")
	fs.String("catalog", "", "path to an enemy/turret catalog YAML (embedded catalog when empty)")
	fs.Bool("watch", false, "reload the catalog file when it changes")
}

var flagKeys = map[string]string{
	"seed":    "seed",
	"level":   "level_file",
	"catalog": "catalog_file",
	"watch":   "watch_catalog",
}

// Load собирает конфигурацию: значения по умолчанию, затем файл,
// затем переменные окружения TD_*, затем флаги.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("tile_size", d.TileSize)
	v.SetDefault("rows", d.Rows)
	v.SetDefault("cols", d.Cols)
	v.SetDefault("side_panel", d.SidePanel)
	v.SetDefault("start_health", d.StartHealth)
	v.SetDefault("start_money", d.StartMoney)
	v.SetDefault("kill_reward", d.KillReward)
	v.SetDefault("level_complete_reward", d.LevelCompleteReward)
	v.SetDefault("buy_cost", d.BuyCost)
	v.SetDefault("upgrade_cost", d.UpgradeCost)
	v.SetDefault("total_levels", d.TotalLevels)
	v.SetDefault("damage", d.Damage)
	v.SetDefault("animation_steps", d.AnimationSteps)
	v.SetDefault("animation_delay_ms", d.AnimationDelayMs)
	v.SetDefault("spawn_cooldown_ms", d.SpawnCooldownMs)
	v.SetDefault("buildable_tiles", d.BuildableTiles)
	v.SetDefault("game_speeds", d.GameSpeeds)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("level_file", d.LevelFile)
	v.SetDefault("catalog_file", d.CatalogFile)
	v.SetDefault("watch_catalog", d.WatchCatalog)
}

// Validate отбрасывает конфигурации, при которых симуляция некорректна.
func (c *Config) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %d", c.TileSize))
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid must be non-empty, got %dx%d", c.Cols, c.Rows))
	}
	if c.AnimationSteps <= 0 {
		errs = append(errs, fmt.Errorf("animation_steps must be positive, got %d", c.AnimationSteps))
	}
	if c.AnimationDelayMs < 0 || c.SpawnCooldownMs < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if c.Damage < 0 || c.KillReward < 0 || c.LevelCompleteReward < 0 {
		errs = append(errs, errors.New("damage and rewards must not be negative"))
	}
	if c.BuyCost < 0 || c.UpgradeCost < 0 {
		errs = append(errs, errors.New("costs must not be negative"))
	}
	if c.TotalLevels <= 0 {
		errs = append(errs, fmt.Errorf("total_levels must be positive, got %d", c.TotalLevels))
	}
	if len(c.GameSpeeds) == 0 {
		errs = append(errs, errors.New("game_speeds must not be empty"))
	}
	for _, s := range c.GameSpeeds {
		if s < 0 {
			errs = append(errs, fmt.Errorf("game speed must not be negative, got %v", s))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// MapWidth и MapHeight: размер игрового поля в пикселях.
func (c *Config) MapWidth() int  { return c.Cols * c.TileSize }
func (c *Config) MapHeight() int { return c.Rows * c.TileSize }

func (c *Config) ScreenWidth() int  { return c.MapWidth() + c.SidePanel }
func (c *Config) ScreenHeight() int { return c.MapHeight() }

// IsBuildable сообщает, можно ли ставить турель на тайл с данным id.
func (c *Config) IsBuildable(tileID int) bool {
	for _, t := range c.BuildableTiles {
		if t == tileID {
			return true
		}
	}
	return false
}

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	BuildableColor    = color.RGBA{70, 120, 70, 255}
	BlockedColor      = color.RGBA{120, 100, 70, 255}
	PathColor         = color.RGBA{128, 128, 0, 128}
	PanelColor        = color.RGBA{40, 40, 55, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TurretColor       = color.RGBA{50, 100, 255, 255}
	TurretFiringColor = color.RGBA{255, 215, 0, 255}
	TurretStroke      = color.RGBA{255, 255, 255, 255}
	RangeColor        = color.RGBA{RangeAlpha, RangeAlpha, RangeAlpha, RangeAlpha} // premultiplied
	EnemyColors       = map[string]color.RGBA{
		"weak":   {50, 255, 50, 255},
		"medium": {255, 165, 0, 255},
		"strong": {255, 50, 50, 255},
		"elite":  {180, 50, 230, 255},
	}
	DefaultEnemyColor = color.RGBA{200, 200, 200, 255}
)
