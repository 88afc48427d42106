package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.ScreenWidth() != 15*48+300 || cfg.ScreenHeight() != 15*48 {
		t.Fatalf("unexpected screen size %dx%d", cfg.ScreenWidth(), cfg.ScreenHeight())
	}
	if !cfg.IsBuildable(7) || cfg.IsBuildable(2) {
		t.Fatalf("tile 7 should be the only buildable tile")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_tile_size", func(c *Config) { c.TileSize = 0 }},
		{"empty_grid", func(c *Config) { c.Rows = 0 }},
		{"no_animation_steps", func(c *Config) { c.AnimationSteps = 0 }},
		{"negative_delay", func(c *Config) { c.SpawnCooldownMs = -1 }},
		{"negative_damage", func(c *Config) { c.Damage = -5 }},
		{"negative_cost", func(c *Config) { c.BuyCost = -1 }},
		{"no_levels", func(c *Config) { c.TotalLevels = 0 }},
		{"no_speeds", func(c *Config) { c.GameSpeeds = nil }},
		{"negative_speed", func(c *Config) { c.GameSpeeds = []float64{1, -2} }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	d := Default()
	if cfg.StartMoney != d.StartMoney || cfg.SpawnCooldownMs != d.SpawnCooldownMs || !slices.Equal(cfg.GameSpeeds, d.GameSpeeds) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "td.yaml")
	body := "start_money: 1000\ngame_speeds: [1, 3]\nseed: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TD_START_HEALTH", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--seed=42", "--watch", "--catalog=custom.yaml"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, fs)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StartMoney != 1000 {
		t.Errorf("file value not applied: start_money=%d", cfg.StartMoney)
	}
	if !slices.Equal(cfg.GameSpeeds, []float64{1, 3}) {
		t.Errorf("file value not applied: game_speeds=%v", cfg.GameSpeeds)
	}
	if cfg.StartHealth != 7 {
		t.Errorf("env value not applied: start_health=%d", cfg.StartHealth)
	}
	if cfg.Seed != 42 {
		t.Errorf("flag should override file: seed=%d", cfg.Seed)
	}
	if !cfg.WatchCatalog || cfg.CatalogFile != "custom.yaml" {
		t.Errorf("flags not applied: watch=%t catalog=%q", cfg.WatchCatalog, cfg.CatalogFile)
	}
	if cfg.TileSize != 48 {
		t.Errorf("unset keys should keep defaults, tile_size=%d", cfg.TileSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "td.yaml")
	if err := os.WriteFile(path, []byte("tile_size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, nil); err == nil {
		t.Fatalf("expected a validation error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
