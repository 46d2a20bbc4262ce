package tilemap

// Registry maps painted coordinates to tiles. Lookups of coordinates that
// were never painted yield the default tile. Not safe for concurrent use.
type Registry struct {
	tiles       map[Coord]Tile
	defaultTile Tile
}

func NewRegistry(defaultTile Tile) *Registry {
	return &Registry{
		tiles:       make(map[Coord]Tile),
		defaultTile: defaultTile,
	}
}

// Set inserts or overwrites the tile at c.
func (r *Registry) Set(c Coord, t Tile) {
	r.tiles[c] = t
}

// Get returns the tile at c, or the default tile if c was never set.
func (r *Registry) Get(c Coord) Tile {
	if t, ok := r.tiles[c]; ok {
		return t
	}
	return r.defaultTile
}

// Has reports whether c was explicitly painted.
func (r *Registry) Has(c Coord) bool {
	_, ok := r.tiles[c]
	return ok
}

func (r *Registry) Default() Tile {
	return r.defaultTile
}

func (r *Registry) Len() int {
	return len(r.tiles)
}
