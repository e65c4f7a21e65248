package factory

import (
	"github.com/Highwind360/spoodle/archetypes"
	"github.com/Highwind360/spoodle/assets"
	"github.com/Highwind360/spoodle/components"
	cfg "github.com/Highwind360/spoodle/config"
	"github.com/Highwind360/spoodle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	frame := assets.MustFirstFrame(cfg.World.PlayerSet, cfg.World.PlayerAnimation)
	w := float64(frame.Bounds().Dx())
	h := float64(frame.Bounds().Dy())

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Sprite.SetValue(player, components.SpriteData{Image: frame})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
