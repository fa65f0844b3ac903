package factory

import (
	"github.com/automoto/shmup/archetypes"
	"github.com/automoto/shmup/autopilot"
	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/components"
	cfg "github.com/automoto/shmup/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the arena entity that owns the running match.
func CreateArena(ecs *ecs.ECS, sim *combat.Simulation, seed uint64) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)

	data := components.ArenaData{
		Sim:  sim,
		Seed: seed,
	}
	if cfg.Debug.Autopilot {
		data.Pilot = autopilot.New(cfg.AutopilotSettings())
	}
	components.Arena.SetValue(arena, data)

	return arena
}

// CreateHUD spawns the entity holding input and pause state.
func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.HUD.Spawn(ecs)
}
