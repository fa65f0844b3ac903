package components

import (
	"github.com/automoto/shmup/autopilot"
	"github.com/automoto/shmup/combat"
	"github.com/yohamta/donburi"
)

// ArenaData holds the running match. The simulation owns all gameplay
// state; the ECS only drives it and draws it.
type ArenaData struct {
	Sim   *combat.Simulation
	Pilot *autopilot.Pilot // nil when the player is in control
	Seed  uint64
}

var Arena = donburi.NewComponentType[ArenaData]()
