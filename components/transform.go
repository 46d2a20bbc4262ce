package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData places an entity on the ground plane. X is world x and Y is
// world depth; Height lifts the sprite above the ground when drawing only.
type TransformData struct {
	Position math.Vec2
	Previous math.Vec2 // position at the start of this frame
	Height   float64
}

var Transform = donburi.NewComponentType[TransformData]()
