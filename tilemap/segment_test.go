package tilemap

import (
	"errors"
	"testing"
)

func TestLocalCoord(t *testing.T) {
	tests := []struct {
		tile    Coord
		segment SegmentCoord
		local   Coord
	}{
		{Coord{23, 7}, SegmentCoord{2, 0}, Coord{3, 7}},
		{Coord{0, 0}, SegmentCoord{0, 0}, Coord{0, 0}},
		{Coord{9, 10}, SegmentCoord{0, 1}, Coord{9, 0}},
		{Coord{-1, -11}, SegmentCoord{-1, -2}, Coord{9, 9}},
		{Coord{-10, -20}, SegmentCoord{-1, -2}, Coord{0, 0}},
	}

	for _, tt := range tests {
		if got := SegmentOf(tt.tile, 10); got != tt.segment {
			t.Errorf("SegmentOf(%v) = %v, want %v", tt.tile, got, tt.segment)
		}
		got, err := LocalCoord(tt.tile, 10)
		if err != nil {
			t.Errorf("LocalCoord(%v) error: %v", tt.tile, err)
		}
		if got != tt.local {
			t.Errorf("LocalCoord(%v) = %v, want %v", tt.tile, got, tt.local)
		}
	}
}

func TestSegmentCacheReusesSegments(t *testing.T) {
	fill := Quad{Material: 0, UV: TileUVRect(20, 8)}
	sc := NewSegmentCache(10, fill)

	a := sc.SegmentFor(Coord{23, 7})
	b := sc.SegmentFor(Coord{29, 0})
	if a != b {
		t.Error("tiles in the same segment returned different segments")
	}
	if sc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", sc.Len())
	}

	c := sc.SegmentFor(Coord{-1, 0})
	if c == a || sc.Len() != 2 {
		t.Errorf("expected a second segment, Len() = %d", sc.Len())
	}
	if a.Origin() != (Coord{20, 0}) || c.Origin() != (Coord{-10, 0}) {
		t.Errorf("origins = %v, %v", a.Origin(), c.Origin())
	}
}

func TestNewSegmentFilledWithDefault(t *testing.T) {
	fill := Quad{Material: 0, UV: TileUVRect(20, 8)}
	s := NewSegmentCache(10, fill).SegmentFor(Coord{})

	if len(s.Quads) != 100 {
		t.Fatalf("len(Quads) = %d, want 100", len(s.Quads))
	}
	for i, q := range s.Quads {
		if q != fill {
			t.Fatalf("quad %d = %+v, want %+v", i, q, fill)
		}
	}
}

func TestSetQuadRejectsOutOfRange(t *testing.T) {
	s := NewSegmentCache(10, Quad{}).SegmentFor(Coord{})

	err := s.SetQuad(Coord{10, 0}, 1, UVRect{})
	if !errors.Is(err, ErrTileOutOfBounds) {
		t.Errorf("SetQuad out of range error = %v, want ErrTileOutOfBounds", err)
	}
	if s.Version != 0 {
		t.Errorf("Version = %d after rejected update, want 0", s.Version)
	}
}

func TestSetQuadVersionOnlyOnChange(t *testing.T) {
	s := NewSegmentCache(10, Quad{Material: 0, UV: TileUVRect(20, 8)}).SegmentFor(Coord{})

	if err := s.SetQuad(Coord{2, 3}, 0, TileUVRect(20, 8)); err != nil {
		t.Fatal(err)
	}
	if s.Version != 0 {
		t.Errorf("Version = %d after writing the fill value, want 0", s.Version)
	}

	steps := []struct {
		material int
		uv       UVRect
		want     uint64
	}{
		{1, TileUVRect(3, 8), 1},
		{1, TileUVRect(3, 8), 1},
		{1, TileUVRect(4, 8), 2},
		{2, TileUVRect(4, 8), 3},
		{2, TileUVRect(4, 8), 3},
	}
	for i, st := range steps {
		if err := s.SetQuad(Coord{2, 3}, st.material, st.uv); err != nil {
			t.Fatal(err)
		}
		if s.Version != st.want {
			t.Errorf("step %d: Version = %d, want %d", i, s.Version, st.want)
		}
	}
}

func TestSegmentBatches(t *testing.T) {
	s := NewSegmentCache(10, Quad{}).SegmentFor(Coord{})
	_ = s.SetQuad(Coord{1, 2}, 1, UVRect{})
	_ = s.SetQuad(Coord{4, 4}, 1, UVRect{})

	batches := s.Batches()
	if len(batches) != 2 {
		t.Fatalf("len(Batches) = %d, want 2", len(batches))
	}
	if batches[0].Material != 0 || len(batches[0].Locals) != 98 {
		t.Errorf("batch 0 = material %d with %d quads", batches[0].Material, len(batches[0].Locals))
	}
	if batches[1].Material != 1 || len(batches[1].Locals) != 2 {
		t.Errorf("batch 1 = material %d with %d quads", batches[1].Material, len(batches[1].Locals))
	}
}
