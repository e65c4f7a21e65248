package systems

import (
	"github.com/Highwind360/spoodle/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps the resolv space's cell bookkeeping in sync with
// object positions. Static objects never move, but the update keeps
// solidity queries valid if a future system does move one.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
