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

// CreateStaticObject spawns a solid, non-moving sprite at a fixed
// location. Its collision rect matches the frame it displays.
func CreateStaticObject(ecs *ecs.ECS, def cfg.StaticObjectDef) *donburi.Entry {
	frame := assets.MustFirstFrame(def.Set, def.Animation)
	w := float64(frame.Bounds().Dx())
	h := float64(frame.Bounds().Dy())

	entry := archetypes.StaticObject.Spawn(ecs)

	obj := resolv.NewObject(def.X, def.Y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Sprite.SetValue(entry, components.SpriteData{Image: frame})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return entry
}
