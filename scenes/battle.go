package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/shmup/archetypes"
	"github.com/automoto/shmup/match"
	"github.com/automoto/shmup/systems"
	"github.com/automoto/shmup/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs one match on a level.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	once         sync.Once
}

// NewBattleScene creates a battle on the embedded level at levelPath.
// An empty path plays the built-in waves.
func NewBattleScene(sc SceneChanger, levelPath string) *BattleScene {
	return &BattleScene{sceneChanger: sc, levelPath: levelPath}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if result, ok := systems.ResultsReady(bs.ecs); ok {
		bs.sceneChanger.ChangeScene(NewResultsScene(bs.sceneChanger, result, bs.levelPath))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	seed := matchSeed()
	sim, err := match.New(match.Options{Seed: seed, LevelPath: bs.levelPath})
	if err != nil {
		log.Printf("Warning: Could not load level %q, using built-in waves: %v", bs.levelPath, err)
		bs.levelPath = ""
		sim, err = match.New(match.Options{Seed: seed})
		if err != nil {
			panic("failed to build match: " + err.Error())
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateArena))

	// Banner runs after the arena so it sees this frame's outcome
	ecs.AddSystem(systems.UpdateBanner)

	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawArena)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawHUD)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawBanner)
	ecs.AddRenderer(archetypes.DefaultLayer, systems.DrawPause)

	factory.CreateHUD(ecs)
	factory.CreateArena(ecs, sim, seed)

	log.Printf("Battle started: seed=%d waves=%d", seed, sim.Level().Len())

	bs.ecs = ecs
}
