package systems

import (
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/gamemath"
	"github.com/automoto/tilegarden/systems/factory"
	"github.com/automoto/tilegarden/tags"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CameraView returns the current world-to-screen mapping.
func CameraView(ecs *ecs.ECS) gamemath.View {
	view := gamemath.View{
		PixelsPerUnit: cfg.Camera.PixelsPerUnit,
		Width:         float64(cfg.C.Width),
		Height:        float64(cfg.C.Height),
	}
	if entry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(entry)
		view.Center = math.Vec2{
			X: camera.Position.X + camera.Pan.X,
			Y: camera.Position.Y + camera.Pan.Y,
		}
	}
	return view
}

// PickGround casts the screen pixel (x, y) onto the ground plane. The pick
// hits only where the invisible ground collider is.
func PickGround(ecs *ecs.ECS, x, y int) tilemap.Pick {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return tilemap.Pick{}
	}
	space := components.Space.Get(spaceEntry)

	point := CameraView(ecs).ScreenToWorld(float64(x), float64(y))
	sx, sy := factory.WorldToSpace(point)
	// Drop a marker at the point. Outside the space it shares no cell with the ground.
	marker := resolv.NewObject(sx, sy, 1, 1)
	space.Add(marker)
	defer space.Remove(marker)

	if marker.Check(0, 0, tags.ResolvGround) == nil {
		return tilemap.Pick{}
	}
	return tilemap.Pick{Hit: true, Point: point}
}
