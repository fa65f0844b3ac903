// Package match assembles a ready-to-step simulation from the global config
// and a level. It has no dependencies on ebitengine or donburi, so both the
// battle scene and the headless runner build matches through it.
package match

import (
	"log/slog"
	"math/rand/v2"

	"github.com/automoto/shmup/assets"
	"github.com/automoto/shmup/combat"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/enemies"
)

// Options selects what New builds.
type Options struct {
	Seed      uint64
	LevelPath string        // embedded level; empty selects the built-in stage
	Waves     []combat.Wave // used instead of LevelPath when set
	Logger    *slog.Logger  // nil uses slog.Default
}

// New assembles a simulation from the global config and a level.
func New(opts Options) (*combat.Simulation, error) {
	waves := opts.Waves
	if waves == nil {
		var err error
		waves, err = assets.LoadWaves(opts.LevelPath, enemies.Create)
		if err != nil {
			return nil, err
		}
	}

	rules := cfg.Rules()
	return combat.NewSimulation(combat.Options{
		Arena:  cfg.Arena(),
		Config: &rules,
		Level:  combat.NewLevel(waves, rules.WaveDelay),
		Rand:   rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		Logger: opts.Logger,
	}), nil
}
