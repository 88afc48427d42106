// cmd/game/main.go
package main

import (
	"errors"
	"log"
	"os"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/sound"
	"go-waypoint-defense/internal/state"
	"go-waypoint-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/pflag"
)

type AppGame struct {
	stateMachine *state.StateMachine
	game         *app.Game
	watcher      *defs.Watcher
	cfg          *config.Config
}

func (a *AppGame) Update() error {
	if a.watcher != nil {
		catalog, err := a.watcher.Poll()
		if err != nil {
			log.Printf("Catalog watcher: %v", err)
		}
		if catalog != nil {
			a.game.ReloadCatalog(catalog)
		}
	}
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth(), a.cfg.ScreenHeight()
}

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	configPath, _ := fs.GetString("config")

	cfg, err := config.Load(configPath, fs)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	catalog, err := defs.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	levelData, err := level.Load(cfg.LevelFile)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	clock := utils.NewPausableClock(utils.NewMonotonicClock())
	game, err := app.NewGame(cfg, catalog, levelData, clock)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	sound.NewShotPlayer(audio.NewContext(sound.SampleRate), game.EventDispatcher)

	var watcher *defs.Watcher
	if cfg.WatchCatalog {
		if cfg.CatalogFile == "" {
			log.Printf("Catalog watch requested but no catalog file set, using embedded catalog")
		} else if watcher, err = defs.NewWatcher(cfg.CatalogFile); err != nil {
			log.Printf("Catalog watcher disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, clock))

	a := &AppGame{
		stateMachine: sm,
		game:         game,
		watcher:      watcher,
		cfg:          cfg,
	}
	ebiten.SetWindowSize(cfg.ScreenWidth(), cfg.ScreenHeight())
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
