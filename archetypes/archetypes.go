package archetypes

import (
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Animation,
	)
	Butterfly = newArchetype(
		tags.Butterfly,
		components.Butterfly,
		components.Transform,
		components.Object,
		components.Animation,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	TileMap = newArchetype(
		components.TileMap,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Editor = newArchetype(
		components.Editor,
	)
	Settings = newArchetype(
		components.Settings,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
