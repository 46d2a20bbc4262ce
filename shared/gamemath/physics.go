package gamemath

import "github.com/yohamta/donburi/features/math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Steer returns the velocity on one axis for a directional input of -1, 0
// or 1. Without input the velocity decays by friction.
func Steer(velocity, dir, accel, friction, max float64) float64 {
	if dir == 0 {
		return ApplyFriction(velocity, friction)
	}
	return ClampSpeed(velocity+dir*accel, max)
}

// InputDirection maps four held directions to a unit-step vector. Up is
// negative depth, matching the screen.
func InputDirection(left, right, up, down bool) math.Vec2 {
	var d math.Vec2
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	return d
}
