package factory

import (
	"github.com/Highwind360/spoodle/archetypes"
	"github.com/Highwind360/spoodle/assets"
	"github.com/Highwind360/spoodle/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBackground(ecs *ecs.ECS) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(bg, components.BackgroundData{
		Image: assets.MustBackground(),
	})
	return bg
}
