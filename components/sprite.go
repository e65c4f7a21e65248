package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image *ebiten.Image

	// Draw offset from the owning object's top-left corner.
	OffsetX float64
	OffsetY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
