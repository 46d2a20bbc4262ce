package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/lafriks/go-tiled"
)

const (
	groundLayer  = "ground"
	objectsGroup = "Objects"

	walkableProperty = "walkable"
	kindProperty     = "kind"
)

// ErrUnknownObjectKind is reported for spawn objects whose kind is not placeable.
var ErrUnknownObjectKind = errors.New("unknown object kind")

// Load parses a TMX file from fsys. The level is centred on the tile
// coordinate gridOffset, the tile under the world origin.
func Load(fsys fs.FS, tmxPath string, gridOffset int) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width,
		Height: levelMap.Height,
		Origin: tilemap.Coord{
			X: gridOffset - levelMap.Width/2,
			Y: gridOffset - levelMap.Height/2,
		},
	}

	for _, ts := range levelMap.Tilesets {
		level.TileSets = append(level.TileSets, parseTileSet(ts))
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != groundLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() || tile.Tileset == nil {
					continue
				}
				level.Tiles = append(level.Tiles, PaintedTile{
					Coord: level.Origin.Add(tilemap.Coord{X: x, Y: y}),
					Tile:  tilemap.Tile{TileSet: tile.Tileset.Name, Index: int(tile.ID)},
				})
			}
		}
		break
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != objectsGroup {
			continue
		}
		for _, o := range og.Objects {
			name := o.Properties.GetString(kindProperty)
			kind, ok := editor.ParseObjectKind(name)
			if !ok {
				log.Printf("Warning: skipping object %d in %s: %v %q", o.ID, tmxPath, ErrUnknownObjectKind, name)
				continue
			}
			level.Spawns = append(level.Spawns, Spawn{
				Kind: kind,
				X:    float64(level.Origin.X) + o.X/tileW,
				Y:    float64(level.Origin.Y) + o.Y/tileH,
			})
		}
	}

	return level, nil
}

// parseTileSet reads the walkable flags of a tileset. A set takes part in
// collision once any of its tiles declares the walkable property.
func parseTileSet(ts *tiled.Tileset) TileSet {
	set := TileSet{
		Name:    ts.Name,
		Columns: ts.Columns,
		Count:   ts.TileCount,
	}
	for _, t := range ts.Tiles {
		for _, p := range t.Properties {
			if p.Name != walkableProperty {
				continue
			}
			set.Collides = true
			if p.Value == "true" {
				set.Walkable = append(set.Walkable, int(t.ID))
			}
		}
	}
	sort.Ints(set.Walkable)
	return set
}

// TileSetNames returns the names of the level's tile sets in file order.
func (l *Level) TileSetNames() []string {
	names := make([]string, 0, len(l.TileSets))
	for _, ts := range l.TileSets {
		names = append(names, ts.Name)
	}
	return names
}

// Apply registers the level's collision rules and paints its tiles into m.
// Tiles the atlas cannot show are skipped with a warning; the rest of the
// level is still painted and the skipped tiles are returned joined.
func (l *Level) Apply(m *tilemap.Map) error {
	atlas := m.Config().ImageXTileCount
	for _, ts := range l.TileSets {
		if ts.Columns != 0 && ts.Columns != atlas {
			log.Printf("Warning: level %s: tile set %s has %d columns, atlas is %dx%d",
				l.Name, ts.Name, ts.Columns, atlas, atlas)
		}
		if ts.Collides {
			m.NoCollision().Register(ts.Name, ts.Walkable...)
		}
	}

	var errs []error
	for _, pt := range l.Tiles {
		if err := m.PaintTile(pt.Coord, pt.Tile.TileSet, pt.Tile.Index); err != nil {
			log.Printf("Warning: level %s: skipping tile: %v", l.Name, err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("level %s: %d tiles skipped: %w", l.Name, len(errs), errors.Join(errs...))
	}
	return nil
}
