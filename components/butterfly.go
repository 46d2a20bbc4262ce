package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ButterflyData struct {
	Velocity math.Vec2

	// Bob eases the sprite up and down; BobRising tells which half plays.
	Bob       *gween.Tween
	BobRising bool
	BobOffset float64
}

var Butterfly = donburi.NewComponentType[ButterflyData]()
