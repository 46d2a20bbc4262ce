package factory

import (
	"github.com/automoto/tilegarden/archetypes"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateGroundSpace creates a space covering the ground plane.
func CreateGroundSpace(ecs *ecs.ECS) *donburi.Entry {
	size := int(cfg.Map.MaxMapSize * cfg.Space.Scale)
	return CreateSpace(ecs, size, size, cfg.Space.CellSize, cfg.Space.CellSize)
}

// WorldToSpace converts a ground-plane position to space units.
func WorldToSpace(p math.Vec2) (x, y float64) {
	half := cfg.Map.MaxMapSize / 2
	return (p.X + half) * cfg.Space.Scale, (p.Y + half) * cfg.Space.Scale
}

// SpaceToWorld is the inverse of WorldToSpace.
func SpaceToWorld(x, y float64) math.Vec2 {
	half := cfg.Map.MaxMapSize / 2
	return math.Vec2{X: x/cfg.Space.Scale - half, Y: y/cfg.Space.Scale - half}
}

// CreateGround adds the invisible collider the pointer pick tests against.
func CreateGround(ecs *ecs.ECS) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	size := cfg.Map.MaxMapSize * cfg.Space.Scale
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}

// newBody creates an entity's collider centred on pos.
func newBody(ecs *ecs.ECS, entry *donburi.Entry, pos math.Vec2, size float64, tag string) *resolv.Object {
	w := size * cfg.Space.Scale
	x, y := WorldToSpace(pos)
	obj := resolv.NewObject(x-w/2, y-w/2, w, w, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, w))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
