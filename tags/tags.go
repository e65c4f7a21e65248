package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	StaticObject = donburi.NewTag().SetName("StaticObject")
)

// Resolv tags for solidity queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
