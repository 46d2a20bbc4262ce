package leveldata

import (
	"errors"
	"math"
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/tilemap"
)

const smallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="grassy_tiles" tilewidth="16" tileheight="16" tilecount="64" columns="8">
  <tile id="20">
   <properties>
    <property name="walkable" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <tileset firstgid="65" name="flowers" tilewidth="16" tileheight="16" tilecount="64" columns="8">
 </tileset>
 <layer id="1" name="ground" width="4" height="2">
  <data encoding="csv">
21,0,0,66,
0,0,12,0
</data>
 </layer>
 <objectgroup id="2" name="Objects">
  <object id="1" x="8" y="24">
   <properties>
    <property name="kind" value="butterfly"/>
   </properties>
   <point/>
  </object>
  <object id="2" x="40" y="8">
   <properties>
    <property name="kind" value="statue"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func loadSmall(t *testing.T) *Level {
	t.Helper()
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(smallTMX)}}
	level, err := Load(fsys, "levels/small.tmx", 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return level
}

func TestLoadTileSets(t *testing.T) {
	level := loadSmall(t)

	if level.Name != "small" || level.Width != 4 || level.Height != 2 {
		t.Errorf("level = %q %dx%d", level.Name, level.Width, level.Height)
	}
	if len(level.TileSets) != 2 {
		t.Fatalf("len(TileSets) = %d, want 2", len(level.TileSets))
	}

	grass := level.TileSets[0]
	if grass.Name != "grassy_tiles" || !grass.Collides || len(grass.Walkable) != 1 || grass.Walkable[0] != 20 {
		t.Errorf("grass tile set = %+v", grass)
	}
	if level.TileSets[1].Collides {
		t.Error("tile set without walkable properties should not collide")
	}
}

func TestLoadTilesAndOrigin(t *testing.T) {
	level := loadSmall(t)

	if level.Origin != (tilemap.Coord{X: 3, Y: 4}) {
		t.Fatalf("Origin = %v, want (3,4)", level.Origin)
	}

	want := []PaintedTile{
		{tilemap.Coord{X: 3, Y: 4}, tilemap.Tile{TileSet: "grassy_tiles", Index: 20}},
		{tilemap.Coord{X: 6, Y: 4}, tilemap.Tile{TileSet: "flowers", Index: 1}},
		{tilemap.Coord{X: 5, Y: 5}, tilemap.Tile{TileSet: "grassy_tiles", Index: 11}},
	}
	if len(level.Tiles) != len(want) {
		t.Fatalf("Tiles = %+v", level.Tiles)
	}
	for i := range want {
		if level.Tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, level.Tiles[i], want[i])
		}
	}
}

func TestLoadSpawnsSkipsUnknownKinds(t *testing.T) {
	level := loadSmall(t)

	if len(level.Spawns) != 1 {
		t.Fatalf("Spawns = %+v, want one butterfly", level.Spawns)
	}
	s := level.Spawns[0]
	if s.Kind != editor.ObjectButterfly || s.X != 3.5 || s.Y != 5.5 {
		t.Errorf("spawn = %+v", s)
	}
}

func TestApplyPaintsAndRegistersCollision(t *testing.T) {
	level := loadSmall(t)
	m := tilemap.New(tilemap.DefaultConfig())

	if err := level.Apply(m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := m.Get(tilemap.Coord{X: 5, Y: 5}); got.Index != 11 {
		t.Errorf("tile (5,5) = %v", got)
	}
	if !m.Blocks(tilemap.Coord{X: 5, Y: 5}) {
		t.Error("grassy tile 11 should block")
	}
	if m.Blocks(tilemap.Coord{X: 3, Y: 4}) || m.Blocks(tilemap.Coord{X: 6, Y: 4}) {
		t.Error("walkable grass and unregistered flowers should not block")
	}
}

const wideTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="1" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="wide_tiles" tilewidth="16" tileheight="16" tilecount="128" columns="16">
 </tileset>
 <layer id="1" name="ground" width="3" height="1">
  <data encoding="csv">
2,100,3
</data>
 </layer>
</map>
`

func TestApplySkipsTilesOutsideAtlas(t *testing.T) {
	fsys := fstest.MapFS{"levels/wide.tmx": {Data: []byte(wideTMX)}}
	level, err := Load(fsys, "levels/wide.tmx", 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ts := level.TileSets[0]; ts.Columns != 16 || ts.Count != 128 {
		t.Fatalf("tile set = %+v", ts)
	}

	m := tilemap.New(tilemap.DefaultConfig())
	err = level.Apply(m)
	if !errors.Is(err, tilemap.ErrInvalidTileIndex) {
		t.Fatalf("Apply error = %v, want ErrInvalidTileIndex", err)
	}

	// Origin is (4, 5) for a 3x1 level centred on 5.
	tests := []struct {
		coord tilemap.Coord
		want  tilemap.Tile
	}{
		{tilemap.Coord{X: 4, Y: 5}, tilemap.Tile{TileSet: "wide_tiles", Index: 1}},
		{tilemap.Coord{X: 5, Y: 5}, tilemap.DefaultTile},
		{tilemap.Coord{X: 6, Y: 5}, tilemap.Tile{TileSet: "wide_tiles", Index: 2}},
	}
	for _, tt := range tests {
		if got := m.Get(tt.coord); got != tt.want {
			t.Errorf("tile %v = %v, want %v", tt.coord, got, tt.want)
		}
	}
	if m.Tiles().Len() != 2 {
		t.Errorf("painted %d tiles, want 2", m.Tiles().Len())
	}
}

func TestLoadSeedLevel(t *testing.T) {
	level, err := Load(os.DirFS("../../assets"), "levels/garden.tmx", 5)
	if err != nil {
		t.Fatalf("Load garden: %v", err)
	}

	names := level.TileSetNames()
	if len(names) != 2 || names[0] != "grassy_tiles" || names[1] != "water_tiles" {
		t.Errorf("TileSetNames = %v", names)
	}
	if len(level.Tiles) != 35 {
		t.Errorf("len(Tiles) = %d, want 35", len(level.Tiles))
	}
	if len(level.Spawns) != 3 {
		t.Errorf("len(Spawns) = %d, want 3", len(level.Spawns))
	}

	m := tilemap.New(tilemap.DefaultConfig())
	if err := level.Apply(m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, s := range level.Spawns {
		c := tilemap.Coord{X: int(math.Floor(s.X)), Y: int(math.Floor(s.Y))}
		if m.Blocks(c) {
			t.Errorf("%v spawns on blocking tile %v", s.Kind, c)
		}
	}
}
