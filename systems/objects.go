package systems

import (
	"github.com/automoto/tilegarden/components"
	"github.com/automoto/tilegarden/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each entity's collider to its resolved position.
// Static colliders such as the ground have no transform and stay put.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) {
			continue
		}
		obj := components.Object.Get(e)
		t := components.Transform.Get(e)
		x, y := factory.WorldToSpace(t.Position)
		obj.X = x - obj.W/2
		obj.Y = y - obj.H/2
		obj.Update()
	}
}
