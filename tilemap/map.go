package tilemap

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidTileIndex is returned when painting an index outside the atlas.
var ErrInvalidTileIndex = errors.New("invalid tile index")

// Config describes the grid geometry.
type Config struct {
	TileSize        float64 // world units per tile
	SegmentSize     int     // tiles per segment side
	MaxMapSize      float64 // world units per side of the ground plane
	ImageXTileCount int     // atlas cells per side
	GridOffset      int     // tile coordinate of the world origin
	DefaultTile     Tile
}

func DefaultConfig() Config {
	return Config{
		TileSize:        0.5,
		SegmentSize:     10,
		MaxMapSize:      100,
		ImageXTileCount: 8,
		GridOffset:      5,
		DefaultTile:     DefaultTile,
	}
}

// Map owns the tile registry, the segment cache, the material list and the
// collision rule. All mutation happens on the frame update path.
type Map struct {
	cfg         Config
	tiles       *Registry
	segments    *SegmentCache
	materials   *Materials
	noCollision *NoCollisionSet
}

func New(cfg Config) *Map {
	m := &Map{
		cfg:         cfg,
		tiles:       NewRegistry(cfg.DefaultTile),
		materials:   NewMaterials(),
		noCollision: NewNoCollisionSet(),
	}

	// The default tile set is always material 0.
	mat, _ := m.materials.Index(cfg.DefaultTile.TileSet)
	m.segments = NewSegmentCache(cfg.SegmentSize, Quad{
		Material: mat,
		UV:       TileUVRect(cfg.DefaultTile.Index, cfg.ImageXTileCount),
	})

	return m
}

func (m *Map) Config() Config { return m.cfg }
func (m *Map) Tiles() *Registry { return m.tiles }
func (m *Map) Segments() *SegmentCache { return m.segments }
func (m *Map) Materials() *Materials { return m.materials }
func (m *Map) NoCollision() *NoCollisionSet { return m.noCollision }
func (m *Map) SegmentFor(c Coord) *Segment { return m.segments.SegmentFor(c) }
func (m *Map) Get(c Coord) Tile { return m.tiles.Get(c) }
func (m *Map) TileAt(pos math.Vec2) Coord { return WorldToTile(pos, m.cfg.TileSize, m.cfg.GridOffset) }
func (m *Map) TileOrigin(c Coord) math.Vec2 { return TileToWorld(c, m.cfg.TileSize, m.cfg.GridOffset) }
func (m *Map) Project(p Pick) (Coord, bool) { return Project(p, m.cfg.TileSize, m.cfg.GridOffset) }
func (m *Map) Blocks(c Coord) bool { return m.noCollision.Blocks(m.tiles.Get(c)) }
func (m *Map) BlocksAt(pos math.Vec2) bool { return m.Blocks(m.TileAt(pos)) }

// PaintTile stores the tile at c and updates the quad that renders it. The
// registry is updated even when the segment update is rejected.
func (m *Map) PaintTile(c Coord, tileSet string, index int) error {
	n := m.cfg.ImageXTileCount
	if index < 0 || index >= n*n {
		return fmt.Errorf("paint %v index %d: %w", c, index, ErrInvalidTileIndex)
	}

	m.tiles.Set(c, Tile{TileSet: tileSet, Index: index})

	mat, _ := m.materials.Index(tileSet)

	seg := m.segments.SegmentFor(c)
	local, err := LocalCoord(c, m.cfg.SegmentSize)
	if err != nil {
		return err
	}
	return seg.SetQuad(local, mat, TileUVRect(index, n))
}

// PickTile returns the tile under a pick, for the editor's eyedropper.
func (m *Map) PickTile(p Pick) (Tile, bool) {
	c, ok := m.Project(p)
	if !ok {
		return Tile{}, false
	}
	return m.tiles.Get(c), true
}

// Resolve moves an entity from prev toward next without entering blocking
// tiles.
func (m *Map) Resolve(prev, next math.Vec2) math.Vec2 {
	return ResolveMove(m.BlocksAt, prev, next)
}

// InBounds reports whether pos lies on the ground plane.
func (m *Map) InBounds(pos math.Vec2) bool {
	half := m.cfg.MaxMapSize / 2
	return pos.X >= -half && pos.X < half && pos.Y >= -half && pos.Y < half
}

// TileBounds returns the inclusive tile range covered by the ground plane.
func (m *Map) TileBounds() (lo, hi Coord) {
	half := m.cfg.MaxMapSize / 2
	lo = m.TileAt(math.Vec2{X: -half, Y: -half})
	hi = m.TileAt(math.Vec2{X: half, Y: half})
	return lo, Coord{X: hi.X - 1, Y: hi.Y - 1}
}
