package main

import (
	"flag"
	"log"

	"github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/fonts"
	"github.com/automoto/tilegarden/scenes"
	"github.com/automoto/tilegarden/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(levelPath string) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize)

	return &Game{scene: scenes.NewWorldScene(levelPath)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", config.SeedLevel, "embedded TMX level to start from")
	flag.BoolVar(&config.Debug.EditorOnStart, "editor", config.Debug.EditorOnStart, "open the editor on start")
	flag.BoolVar(&config.Debug.ShowColliders, "colliders", config.Debug.ShowColliders, "outline colliders and blocking tiles")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tilegarden")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if config.Debug.ShowColliders {
		systems.SetShowCollidersGlobal(true)
	}

	if err := ebiten.RunGame(NewGame(*levelPath)); err != nil {
		log.Fatal(err)
	}
}
