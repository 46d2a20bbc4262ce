package factory

import (
	"fmt"

	"github.com/automoto/tilegarden/editor"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Spawners creates the entity for each placeable kind at a ground position.
var Spawners = map[editor.ObjectKind]func(*ecs.ECS, math.Vec2) *donburi.Entry{
	editor.ObjectButterfly: CreateButterfly,
	editor.ObjectPlayer:    CreatePlayer,
}

// Spawn creates an entity of kind at pos.
func Spawn(ecs *ecs.ECS, kind editor.ObjectKind, at math.Vec2) (*donburi.Entry, error) {
	spawn, ok := Spawners[kind]
	if !ok {
		return nil, fmt.Errorf("no spawner for %s", kind)
	}
	return spawn(ecs, at), nil
}
