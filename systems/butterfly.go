package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/gamemath"
	"github.com/automoto/tilegarden/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var wanderRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// UpdateButterflies wanders every butterfly and advances its bob.
func UpdateButterflies(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	tags.Butterfly.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Butterfly.Get(e)
		t := components.Transform.Get(e)

		b.Velocity = gamemath.Wander(wanderRand, b.Velocity, cfg.Butterfly.ChangeChance, cfg.Butterfly.WanderSpread)
		t.Position.X += b.Velocity.X
		t.Position.Y += b.Velocity.Y

		if b.Bob == nil {
			return
		}
		offset, finished := b.Bob.Update(dt)
		b.BobOffset = float64(offset)
		if finished {
			// Reverse direction for the next half.
			amp := float32(cfg.Butterfly.BobAmplitude)
			b.BobRising = !b.BobRising
			if b.BobRising {
				b.Bob = gween.New(0, amp, cfg.Butterfly.BobDuration, ease.InOutSine)
			} else {
				b.Bob = gween.New(amp, 0, cfg.Butterfly.BobDuration, ease.InOutSine)
			}
		}
	})
}
