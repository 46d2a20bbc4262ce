package factory

import (
	"github.com/automoto/tilegarden/archetypes"
	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position: at,
		Previous: at,
		Height:   cfg.Player.Height,
	})
	components.Player.SetValue(player, components.PlayerData{})
	newBody(ecs, player, at, cfg.Player.Size, tags.ResolvPlayer)

	animData := GenerateAnimations("player", placeholders.TileSize, placeholders.TileSize)
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(player, animData)

	return player
}
