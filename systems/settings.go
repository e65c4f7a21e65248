package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles display toggles and persists them.
func UpdateSettings(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		SaveSettings(&SavedSettings{Fullscreen: full})
	}
}
