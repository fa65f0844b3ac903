package combat

import (
	"log/slog"
	"math/rand/v2"

	"github.com/automoto/shmup/shared/gamemath"
)

var testArena = Arena{Width: 800, Height: 600}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *Config {
	cfg := DefaultConfig()
	return &cfg
}

func newTestFrame(dt float64, seed uint64) *Frame {
	cfg := testConfig()
	return &Frame{
		DT:     dt,
		Rand:   rand.New(rand.NewPCG(seed, seed)),
		Arena:  testArena,
		Player: NewPlayer(PlayerStart(testArena), cfg.Player),
		Config: cfg,
		Log:    quietLogger(),
		queue:  &spawnQueue{},
	}
}

// stillStats never moves and has the given health and contact damage.
func stillStats(health, slam int, size float64) *StatModel {
	return &StatModel{
		MaxHealth:        health,
		SlamDamage:       slam,
		Size:             size,
		ProjectileSpeed:  100,
		ProjectileDamage: 10,
	}
}

var passive = BehaviorModel{}

func newTestSim(level *Level, seed uint64) *Simulation {
	return NewSimulation(Options{
		Arena:  testArena,
		Config: testConfig(),
		Level:  level,
		Rand:   rand.New(rand.NewPCG(seed, seed)),
		Logger: quietLogger(),
	})
}

func simpleStats() *StatModel {
	return &StatModel{BaseSpeed: 200, MaxSpeed: 300, MinSpeed: 100, ProjectileSpeed: 200, ProjectileDamage: 5, SlamDamage: 5, MaxHealth: 100, Size: 30}
}

func testWaves() []Wave {
	sniper := &StatModel{BaseSpeed: 250, MaxSpeed: 500, MinSpeed: 200, ProjectileSpeed: 100, ProjectileDamage: 10, MaxHealth: 50, Size: 20}
	tank := &StatModel{BaseSpeed: 150, MaxSpeed: 500, MinSpeed: 100, SlamDamage: 10, MaxHealth: 200, Size: 50}
	boss := &StatModel{BaseSpeed: 50, MaxSpeed: 50, MinSpeed: 50, ProjectileSpeed: 100, ProjectileDamage: 100, SlamDamage: 100, MaxHealth: 1000, Size: 70}
	return []Wave{
		{Enemies: []*Enemy{
			NewEnemy(Simple, gamemath.V(100, -100), &DefaultBehavior, simpleStats()),
			NewEnemy(Tracing, gamemath.V(700, -100), &ScaredBehavior, sniper),
		}},
		{Enemies: []*Enemy{
			NewEnemy(Simple, gamemath.V(400, -100), &TacklerBehavior, tank),
			NewEnemy(Tracing, gamemath.V(400, -100), &ScaredBehavior, sniper),
		}},
		{Enemies: []*Enemy{
			NewEnemy(Boss, gamemath.V(400, -100), &DefaultBehavior, boss),
		}},
	}
}
