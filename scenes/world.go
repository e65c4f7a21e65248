package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/Highwind360/spoodle/config"
	"github.com/Highwind360/spoodle/systems"
	"github.com/Highwind360/spoodle/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger lets a scene swap the active scene on its host.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates the main game scene.
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Clear first so a missing background never leaves stale pixels.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdateObjects)
	world.AddSystem(systems.UpdateSettings)

	world.AddRenderer(cfg.Default, systems.DrawBackground)
	world.AddRenderer(cfg.Default, systems.DrawSprites)

	ws.ecs = world

	// The space covers the whole screen; everything solid lives in it.
	factory.CreateSpace(ws.ecs, cfg.C.Width, cfg.C.Height, cfg.C.TileSize/4, cfg.C.TileSize/4)

	factory.CreateBackground(ws.ecs)

	for _, def := range cfg.World.Objects {
		factory.CreateStaticObject(ws.ecs, def)
	}

	factory.CreatePlayer(ws.ecs, cfg.World.PlayerSpawnX, cfg.World.PlayerSpawnY)
}
