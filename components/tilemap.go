package components

import (
	"github.com/automoto/tilegarden/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// MeshBatch is the vertex data of one material inside a segment, in world
// units. Screen placement is applied when drawing.
type MeshBatch struct {
	Material int
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// SegmentMesh caches the batches built from a segment at Version.
type SegmentMesh struct {
	Version uint64
	Batches []MeshBatch
}

// TileMapData is the singleton holding the editable map.
type TileMapData struct {
	Map    *tilemap.Map
	Meshes map[tilemap.SegmentCoord]*SegmentMesh

	// scratch buffer reused when drawing a batch
	Screen []ebiten.Vertex
}

var TileMap = donburi.NewComponentType[TileMapData]()
