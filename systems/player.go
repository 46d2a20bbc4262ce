package systems

import (
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/gamemath"
	"github.com/automoto/tilegarden/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves every player by the held direction keys.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dir := gamemath.InputDirection(
		input.Current[cfg.ActionMoveLeft],
		input.Current[cfg.ActionMoveRight],
		input.Current[cfg.ActionMoveUp],
		input.Current[cfg.ActionMoveDown],
	)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		t := components.Transform.Get(e)

		p := cfg.Player
		player.Velocity.X = gamemath.Steer(player.Velocity.X, dir.X, p.Acceleration, p.Friction, p.Speed)
		player.Velocity.Y = gamemath.Steer(player.Velocity.Y, dir.Y, p.Acceleration, p.Friction, p.Speed)

		t.Position.X += player.Velocity.X
		t.Position.Y += player.Velocity.Y
	})
}
