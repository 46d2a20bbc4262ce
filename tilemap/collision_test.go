package tilemap

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestNoCollisionSetBlocks(t *testing.T) {
	n := NewNoCollisionSet()
	n.Register("tileSetA", 5, 6)

	tests := []struct {
		tile Tile
		want bool
	}{
		{Tile{"tileSetA", 5}, false},
		{Tile{"tileSetA", 6}, false},
		{Tile{"tileSetA", 7}, true},
		{Tile{"tileSetB", 5}, false},
	}

	for _, tt := range tests {
		if got := n.Blocks(tt.tile); got != tt.want {
			t.Errorf("Blocks(%v) = %v, want %v", tt.tile, got, tt.want)
		}
	}
}

func TestNoCollisionSetEmptyRegistrationBlocksAll(t *testing.T) {
	n := NewNoCollisionSet()
	n.Register("water_tiles")

	if !n.Blocks(Tile{"water_tiles", 0}) || !n.Blocks(Tile{"water_tiles", 63}) {
		t.Error("tile set registered without open tiles should block every index")
	}
}

// unitMap returns a map where world units equal tile coordinates.
func unitMap() *Map {
	cfg := DefaultConfig()
	cfg.TileSize = 1
	cfg.GridOffset = 0
	m := New(cfg)
	m.NoCollision().Register("rocks")
	return m
}

func TestResolveScenarios(t *testing.T) {
	prev := math.Vec2{X: 0.5, Y: 0.5}
	next := math.Vec2{X: 1.5, Y: 1.5}

	tests := []struct {
		name    string
		blocked []Coord
		want    math.Vec2
	}{
		{"open", nil, next},
		{"slide along x", []Coord{{1, 1}, {0, 1}}, math.Vec2{X: 1.5, Y: 0.5}},
		{"slide along y", []Coord{{1, 1}, {1, 0}}, math.Vec2{X: 0.5, Y: 1.5}},
		{"x move wins tie", []Coord{{1, 1}}, math.Vec2{X: 1.5, Y: 0.5}},
		{"full block", []Coord{{1, 1}, {1, 0}, {0, 1}}, prev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := unitMap()
			for _, c := range tt.blocked {
				if err := m.PaintTile(c, "rocks", 0); err != nil {
					t.Fatalf("PaintTile(%v): %v", c, err)
				}
			}
			if got := m.Resolve(prev, next); got != tt.want {
				t.Errorf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveMoveTryOrder(t *testing.T) {
	var tried []math.Vec2
	blocked := func(p math.Vec2) bool {
		tried = append(tried, p)
		return true
	}

	prev := math.Vec2{X: 0, Y: 0}
	next := math.Vec2{X: 1, Y: 1}
	if got := ResolveMove(blocked, prev, next); got != prev {
		t.Fatalf("ResolveMove = %v, want %v", got, prev)
	}

	want := []math.Vec2{next, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if len(tried) != len(want) {
		t.Fatalf("tried = %v, want %v", tried, want)
	}
	for i := range want {
		if tried[i] != want[i] {
			t.Errorf("try %d = %v, want %v", i, tried[i], want[i])
		}
	}
}
