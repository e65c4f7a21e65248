package config

import "image/color"

// Config holds general game configuration
type Config struct {
	TileSize    int // base tile resolution in pixels
	TilesAcross int
	TilesDown   int
	Width       int // derived: TilesAcross * TileSize
	Height      int // derived: TilesDown * TileSize
	TickRate    int // game updates per second
	WindowTitle string
	ImageDir    string // asset path prefix for images
	Background  string // background image filename
	SpriteIndex string // spritesheet configuration filename
}

// WorldConfig places the initial entities of the world.
type WorldConfig struct {
	PlayerSet       string // animation set used for the player sprite
	PlayerAnimation string
	PlayerSpawnX    float64
	PlayerSpawnY    float64

	Objects []StaticObjectDef
}

// StaticObjectDef is a solid, non-moving sprite spawned at a fixed
// location.
type StaticObjectDef struct {
	Set       string
	Animation string
	X         float64
	Y         float64
}

// Global configuration instances
var C *Config
var World WorldConfig

// Shared RGBA color constants
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		TileSize:    64,
		TilesAcross: 12,
		TilesDown:   9,
		TickRate:    30,
		WindowTitle: "spoodle",
		ImageDir:    "images",
		Background:  "background.png",
		SpriteIndex: "sprites.json",
	}
	C.Width = C.TilesAcross * C.TileSize
	C.Height = C.TilesDown * C.TileSize

	World = WorldConfig{
		PlayerSet:       "player",
		PlayerAnimation: "spellcast_down",
		PlayerSpawnX:    float64(5 * C.TileSize),
		PlayerSpawnY:    float64(4 * C.TileSize),
		Objects: []StaticObjectDef{
			{Set: "props", Animation: "rock", X: float64(2 * C.TileSize), Y: float64(6 * C.TileSize)},
			{Set: "props", Animation: "tree", X: float64(9 * C.TileSize), Y: float64(2 * C.TileSize)},
			{Set: "props", Animation: "shrub", X: float64(7 * C.TileSize), Y: float64(7 * C.TileSize)},
		},
	}
}
