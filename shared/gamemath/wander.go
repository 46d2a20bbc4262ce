package gamemath

import (
	"math/rand"

	"github.com/yohamta/donburi/features/math"
)

// Wander keeps v, or with probability chance replaces it by a random velocity
// with each axis in [-spread/2, spread/2).
func Wander(r *rand.Rand, v math.Vec2, chance, spread float64) math.Vec2 {
	if r.Float64() >= chance {
		return v
	}
	return math.Vec2{
		X: spread * (r.Float64() - 0.5),
		Y: spread * (r.Float64() - 0.5),
	}
}
