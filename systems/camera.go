package systems

import (
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/gamemath"
	"github.com/automoto/tilegarden/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the first player. While the editor is open the
// operator can pan away from the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if ed := GetEditor(e); ed != nil && ed.Editor.Enabled() {
		input := getOrCreateInput(e)
		pan := gamemath.InputDirection(
			input.Current[cfg.ActionPanLeft],
			input.Current[cfg.ActionPanRight],
			input.Current[cfg.ActionPanUp],
			input.Current[cfg.ActionPanDown],
		)
		camera.Pan.X += pan.X * cfg.Camera.PanSpeed
		camera.Pan.Y += pan.Y * cfg.Camera.PanSpeed
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position

	// Keep the view on the ground plane.
	half := cfg.Map.MaxMapSize / 2
	target = math.Vec2{
		X: clamp(target.X, -half, half),
		Y: clamp(target.Y, -half, half),
	}

	camera.Position = gamemath.Follow(camera.Position, target, cfg.Camera.FollowSmoothing)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
