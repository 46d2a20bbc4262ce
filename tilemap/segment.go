package tilemap

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTileOutOfBounds is returned when a tile coordinate does not land inside
// the segment it was mapped to.
var ErrTileOutOfBounds = errors.New("tile index out of bounds")

// SegmentCoord addresses a segment: floor(tile coordinate / segment size).
type SegmentCoord struct {
	X, Y int
}

// Quad is one tile-sized face of a segment.
type Quad struct {
	Material int
	UV       UVRect
}

// Segment is a size×size chunk of the grid rendered as one mesh. Quads are
// stored row-major by local coordinate.
type Segment struct {
	Coord SegmentCoord
	Size  int
	Quads []Quad

	// Version increments on every quad change so renderers can rebuild
	// their cached vertices lazily.
	Version uint64
}

// Batch lists the local coordinates of the quads that share a material.
type Batch struct {
	Material int
	Locals   []Coord
}

func newSegment(coord SegmentCoord, size int, fill Quad) *Segment {
	quads := make([]Quad, size*size)
	for i := range quads {
		quads[i] = fill
	}
	return &Segment{Coord: coord, Size: size, Quads: quads}
}

// Origin returns the tile coordinate of the segment's local (0, 0).
func (s *Segment) Origin() Coord {
	return Coord{X: s.Coord.X * s.Size, Y: s.Coord.Y * s.Size}
}

// Quad returns the quad at a local coordinate, or nil if it is out of range.
func (s *Segment) Quad(local Coord) *Quad {
	if local.X < 0 || local.Y < 0 || local.X >= s.Size || local.Y >= s.Size {
		return nil
	}
	return &s.Quads[local.Y*s.Size+local.X]
}

// SetQuad assigns material and UVs to the quad at local. Version only
// changes when the quad does, so repainting the same tile keeps the cached
// mesh.
func (s *Segment) SetQuad(local Coord, material int, uv UVRect) error {
	q := s.Quad(local)
	if q == nil {
		return fmt.Errorf("segment %v local %v: %w", s.Coord, local, ErrTileOutOfBounds)
	}
	if q.Material == material && q.UV == uv {
		return nil
	}
	q.Material = material
	q.UV = uv
	s.Version++
	return nil
}

// Batches groups the quads by material, ordered by material index.
func (s *Segment) Batches() []Batch {
	byMaterial := make(map[int][]Coord)
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			m := s.Quads[y*s.Size+x].Material
			byMaterial[m] = append(byMaterial[m], Coord{X: x, Y: y})
		}
	}

	batches := make([]Batch, 0, len(byMaterial))
	for m, locals := range byMaterial {
		batches = append(batches, Batch{Material: m, Locals: locals})
	}
	sort.Slice(batches, func(i, j int) bool {
		return batches[i].Material < batches[j].Material
	})
	return batches
}

// SegmentOf returns the segment covering tile c.
func SegmentOf(c Coord, size int) SegmentCoord {
	return SegmentCoord{X: floorDiv(c.X, size), Y: floorDiv(c.Y, size)}
}

// LocalCoord maps tile c to its coordinate inside its segment:
// local = c - size*floor(c/size).
func LocalCoord(c Coord, size int) (Coord, error) {
	sc := SegmentOf(c, size)
	local := Coord{X: c.X - size*sc.X, Y: c.Y - size*sc.Y}
	if local.X < 0 || local.Y < 0 || local.X >= size || local.Y >= size {
		return local, fmt.Errorf("tile %v: %w", c, ErrTileOutOfBounds)
	}
	return local, nil
}

// SegmentCache builds segments on first reference and keeps them for the
// lifetime of the map. Segments are never evicted.
type SegmentCache struct {
	size     int
	fill     Quad
	segments map[SegmentCoord]*Segment
}

// NewSegmentCache creates a cache whose new segments start with every quad
// set to fill.
func NewSegmentCache(size int, fill Quad) *SegmentCache {
	return &SegmentCache{
		size:     size,
		fill:     fill,
		segments: make(map[SegmentCoord]*Segment),
	}
}

func (sc *SegmentCache) Size() int {
	return sc.size
}

// SegmentFor returns the segment covering tile c, creating it if needed.
func (sc *SegmentCache) SegmentFor(c Coord) *Segment {
	return sc.Segment(SegmentOf(c, sc.size))
}

// Segment returns the segment at coord, creating it if needed.
func (sc *SegmentCache) Segment(coord SegmentCoord) *Segment {
	if s, ok := sc.segments[coord]; ok {
		return s
	}
	s := newSegment(coord, sc.size, sc.fill)
	sc.segments[coord] = s
	return s
}

// Lookup returns the segment at coord without creating it.
func (sc *SegmentCache) Lookup(coord SegmentCoord) (*Segment, bool) {
	s, ok := sc.segments[coord]
	return s, ok
}

func (sc *SegmentCache) Len() int {
	return len(sc.segments)
}
