package gamemath

import "github.com/yohamta/donburi/features/math"

// View maps world units to screen pixels. Center is the world point drawn
// at the middle of the screen.
type View struct {
	Center        math.Vec2
	PixelsPerUnit float64
	Width         float64 // screen pixels
	Height        float64 // screen pixels
}

// WorldToScreen returns the screen pixel of a world point.
func (v View) WorldToScreen(p math.Vec2) (x, y float64) {
	x = (p.X-v.Center.X)*v.PixelsPerUnit + v.Width/2
	y = (p.Y-v.Center.Y)*v.PixelsPerUnit + v.Height/2
	return x, y
}

// ScreenToWorld is the inverse of WorldToScreen.
func (v View) ScreenToWorld(x, y float64) math.Vec2 {
	return math.Vec2{
		X: (x-v.Width/2)/v.PixelsPerUnit + v.Center.X,
		Y: (y-v.Height/2)/v.PixelsPerUnit + v.Center.Y,
	}
}

// Bounds returns the world rectangle visible on screen.
func (v View) Bounds() (lo, hi math.Vec2) {
	halfW := v.Width / 2 / v.PixelsPerUnit
	halfH := v.Height / 2 / v.PixelsPerUnit
	lo = math.Vec2{X: v.Center.X - halfW, Y: v.Center.Y - halfH}
	hi = math.Vec2{X: v.Center.X + halfW, Y: v.Center.Y + halfH}
	return lo, hi
}

// Follow moves current toward target by the smoothing fraction.
func Follow(current, target math.Vec2, smoothing float64) math.Vec2 {
	return math.Vec2{
		X: current.X + (target.X-current.X)*smoothing,
		Y: current.Y + (target.Y-current.Y)*smoothing,
	}
}
