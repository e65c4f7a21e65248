package archetypes

import (
	"github.com/Highwind360/spoodle/components"
	cfg "github.com/Highwind360/spoodle/config"
	"github.com/Highwind360/spoodle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Sprite,
	)
	StaticObject = newArchetype(
		tags.StaticObject,
		components.Object,
		components.Sprite,
	)
	Background = newArchetype(
		components.Background,
	)
	Space = newArchetype(
		components.Space,
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
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
