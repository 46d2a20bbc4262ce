package tilemap

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// Pick is the result of intersecting a pointer ray with the ground plane.
type Pick struct {
	Hit   bool
	Point math.Vec2
}

// WorldToTile converts a ground-plane position to the tile containing it.
func WorldToTile(pos math.Vec2, tileSize float64, offset int) Coord {
	return Coord{
		X: int(gomath.Floor(pos.X/tileSize)) + offset,
		Y: int(gomath.Floor(pos.Y/tileSize)) + offset,
	}
}

// TileToWorld returns the ground-plane position of the top-left corner of c.
func TileToWorld(c Coord, tileSize float64, offset int) math.Vec2 {
	return math.Vec2{
		X: float64(c.X-offset) * tileSize,
		Y: float64(c.Y-offset) * tileSize,
	}
}

// Project converts a pick result to a tile coordinate. A miss yields false.
func Project(p Pick, tileSize float64, offset int) (Coord, bool) {
	if !p.Hit {
		return Coord{}, false
	}
	return WorldToTile(p.Point, tileSize, offset), true
}
