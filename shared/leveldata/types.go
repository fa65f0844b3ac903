// Package leveldata provides TMX wave parsing shared by the game and the
// headless runner. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/shared/gamemath"
)

// LevelData holds the wave layout parsed from a TMX level file.
type LevelData struct {
	Name      string
	Waves     []WaveData
	MapWidth  int
	MapHeight int
}

// WaveData is one object group of enemy placements.
type WaveData struct {
	Name   string
	Order  int
	Spawns []Spawn
}

// Spawn is a single enemy placement.
type Spawn struct {
	Kind string // "simple", "sniper", "tank", "boss"
	X, Y float64
}

// Factory builds an enemy of the named kind.
type Factory func(kind string, pos gamemath.Vec) (*combat.Enemy, error)
