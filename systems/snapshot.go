package systems

import (
	"github.com/automoto/tilegarden/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSnapshot records every entity's position before movement, so tile
// collision can fall back to it.
func UpdateSnapshot(ecs *ecs.ECS) {
	for e := range components.Transform.Iter(ecs.World) {
		t := components.Transform.Get(e)
		t.Previous = t.Position
	}
}
