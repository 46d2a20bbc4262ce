// Package leveldata provides TMX level parsing for the seed map.
// It has no dependencies on ebitengine or resolv; pure data only.
package leveldata

import (
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/tilemap"
)

// Level is the content of a seed map: its tile sets, the painted tiles and
// the entities to spawn.
type Level struct {
	Name     string
	Width    int // tiles
	Height   int // tiles
	Origin   tilemap.Coord
	TileSets []TileSet
	Tiles    []PaintedTile
	Spawns   []Spawn
}

// TileSet describes one atlas used by the level.
type TileSet struct {
	Name     string
	Columns  int
	Count    int
	Collides bool  // whether the set takes part in collision at all
	Walkable []int // open tiles of a colliding set
}

// PaintedTile is one non-empty cell of the ground layer.
type PaintedTile struct {
	Coord tilemap.Coord
	Tile  tilemap.Tile
}

// Spawn places an entity. X and Y are in tile units on the map grid, so
// (5.5, 5.5) is the centre of tile (5, 5).
type Spawn struct {
	Kind editor.ObjectKind
	X, Y float64
}
