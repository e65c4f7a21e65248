package systems

import (
	"github.com/Highwind360/spoodle/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground paints the world background before any sprites.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	bgEntry, ok := components.Background.First(ecs.World)
	if !ok {
		return
	}

	bg := components.Background.Get(bgEntry)
	if bg.Image == nil {
		return
	}

	drawOp.GeoM.Reset()
	screen.DrawImage(bg.Image, drawOp)
}

// DrawSprites renders every entity carrying a sprite at its object's
// position. Entities are drawn in spawn order, so later spawns overlap
// earlier ones.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	for e := range components.Sprite.Iter(ecs.World) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			continue
		}

		o := components.Object.Get(e)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(o.X+sprite.OffsetX, o.Y+sprite.OffsetY)
		screen.DrawImage(sprite.Image, drawOp)
	}
}
