package systems

import (
	"github.com/automoto/tilegarden/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTileCollision keeps moved entities off blocking tiles and on the
// ground plane.
func UpdateTileCollision(ecs *ecs.ECS) {
	tm := GetTileMap(ecs)
	if tm == nil {
		return
	}

	for e := range components.Transform.Iter(ecs.World) {
		t := components.Transform.Get(e)
		if t.Position == t.Previous {
			continue
		}
		t.Position = tm.Map.Resolve(t.Previous, t.Position)
		if !tm.Map.InBounds(t.Position) {
			t.Position = t.Previous
		}
	}
}
