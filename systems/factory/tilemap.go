package factory

import (
	"log"

	"github.com/automoto/tilegarden/archetypes"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/leveldata"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateTileMap creates the map singleton and paints the seed level into it.
func CreateTileMap(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.TileMap.Spawn(ecs)

	m := tilemap.New(cfg.Map)
	if level != nil {
		if err := level.Apply(m); err != nil {
			log.Printf("Warning: seed level partly applied: %v", err)
		}
	}

	components.TileMap.SetValue(entry, components.TileMapData{
		Map:    m,
		Meshes: make(map[tilemap.SegmentCoord]*components.SegmentMesh),
	})
	return entry
}

// SpawnLevelObjects creates the level's entities. Spawn positions are in
// tile units; they are converted to world positions on the ground plane.
func SpawnLevelObjects(ecs *ecs.ECS, level *leveldata.Level) {
	for _, s := range level.Spawns {
		at := math.Vec2{
			X: (s.X - float64(cfg.Map.GridOffset)) * cfg.Map.TileSize,
			Y: (s.Y - float64(cfg.Map.GridOffset)) * cfg.Map.TileSize,
		}
		if _, err := Spawn(ecs, s.Kind, at); err != nil {
			log.Printf("Warning: level %s: %v", level.Name, err)
		}
	}
}
