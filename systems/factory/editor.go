package factory

import (
	"github.com/automoto/tilegarden/archetypes"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEditor creates the editor singleton browsing tileSets.
func CreateEditor(ecs *ecs.ECS, tileSets []string) *donburi.Entry {
	entry := archetypes.Editor.Spawn(ecs)

	ed := editor.New(tileSets, cfg.Map.ImageXTileCount)
	ed.SetPen(editor.Pen{
		Mode: editor.PenTile,
		Tile: tilemap.Tile{TileSet: cfg.Editor.StartTileSet, Index: cfg.Editor.StartTileIndex},
	})
	if cfg.Debug.EditorOnStart {
		ed.Toggle()
	}

	components.Editor.SetValue(entry, components.EditorData{Editor: ed})
	return entry
}
