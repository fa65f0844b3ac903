package archetypes

import (
	"github.com/automoto/shmup/components"
	"github.com/automoto/shmup/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultLayer is the only render layer; renderers draw in registration order.
const DefaultLayer ecs.LayerID = iota

var (
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
		components.Banner,
	)
	HUD = newArchetype(
		tags.HUD,
		components.Input,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
