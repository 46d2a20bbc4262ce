package factory

import (
	"github.com/automoto/tilegarden/archetypes"
	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateButterfly(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	butterfly := archetypes.Butterfly.Spawn(ecs)

	components.Transform.SetValue(butterfly, components.TransformData{
		Position: at,
		Previous: at,
		Height:   cfg.Butterfly.Height,
	})

	// The butterfly bobs using a tween that the butterfly system reverses
	// each time it finishes.
	amp := float32(cfg.Butterfly.BobAmplitude)
	components.Butterfly.SetValue(butterfly, components.ButterflyData{
		Bob:       gween.New(0, amp, cfg.Butterfly.BobDuration, ease.InOutSine),
		BobRising: true,
	})
	newBody(ecs, butterfly, at, cfg.Butterfly.Size, tags.ResolvButterfly)

	animData := GenerateAnimations("butterfly", placeholders.TileSize, placeholders.TileSize)
	animData.SetAnimation(cfg.Flap)
	components.Animation.Set(butterfly, animData)

	return butterfly
}
