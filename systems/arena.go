package systems

import (
	"github.com/automoto/shmup/components"
	cfg "github.com/automoto/shmup/config"
	"github.com/yohamta/donburi/ecs"
)

// GetArena returns the running match, or nil before one is created.
func GetArena(e *ecs.ECS) *components.ArenaData {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(entry)
}

// UpdateArena advances the match by one fixed step. The autopilot, when
// enabled, replaces the polled input.
func UpdateArena(e *ecs.ECS) {
	arena := GetArena(e)
	if arena == nil || arena.Sim == nil {
		return
	}

	dt := cfg.FrameDT()
	in := PlayerIntent(GetOrCreateInput(e))
	if arena.Pilot != nil {
		in = arena.Pilot.Next(arena.Sim, dt)
	}
	arena.Sim.Step(in, dt)
}

// WithGameplayChecks wraps a system to skip execution when paused or the match is over
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithMatchOverCheck(system))
}
