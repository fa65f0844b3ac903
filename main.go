package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/shmup/assets"
	"github.com/automoto/shmup/config"
	"github.com/automoto/shmup/fonts"
	"github.com/automoto/shmup/scenes"
	"github.com/automoto/shmup/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelPath string) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewBattleScene(g, levelPath)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	autopilot := flag.Bool("autopilot", config.Debug.Autopilot, "Let the autopilot fly the ship")
	seed := flag.Uint64("seed", config.Debug.Seed, "Match seed (0 = from the clock)")
	level := flag.String("level", "", "Embedded level name, e.g. stage1 (empty = "+config.Wave.LevelPath+")")
	builtin := flag.Bool("builtin", false, "Play the built-in waves instead of a level file")
	flag.Parse()

	config.Debug.Autopilot = *autopilot
	config.Debug.Seed = *seed

	levelPath := config.Wave.LevelPath
	switch {
	case *builtin:
		levelPath = ""
	case *level != "":
		levelPath = assets.LevelPath(*level)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("shmup")
	ebiten.SetTPS(config.C.FPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for match records
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(levelPath)); err != nil {
		log.Fatal(err)
	}
}
