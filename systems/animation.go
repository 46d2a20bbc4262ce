package systems

import (
	"github.com/automoto/tilegarden/components"
	"github.com/yohamta/donburi/ecs"
)

func UpdateAnimations(ecs *ecs.ECS) {
	for e := range components.Animation.Iter(ecs.World) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	}
}
