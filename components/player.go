package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Velocity math.Vec2
}

var Player = donburi.NewComponentType[PlayerData]()
