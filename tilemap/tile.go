// Package tilemap holds the tile grid of the world: the sparse tile registry,
// the lazily built render segments, atlas UV layout and the collision rule.
// It has no dependencies on ebitengine so it can be tested headless.
package tilemap

// Coord is an integer tile coordinate on the map grid.
type Coord struct {
	X, Y int
}

// Add returns c offset by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Tile references one cell of a tile-set atlas. Tiles compare by value.
type Tile struct {
	TileSet string
	Index   int
}

// DefaultTile is returned for every coordinate that was never painted.
var DefaultTile = Tile{TileSet: "grassy_tiles", Index: 20}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
