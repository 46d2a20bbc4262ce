package placeholders

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

// Generator draws one tile of a tile-set atlas.
type Generator func(index int) *image.RGBA

// TileSets maps tile-set ids to their tile generators.
var TileSets = map[string]Generator{
	"grassy_tiles": grassyTile,
	"water_tiles":  waterTile,
}

// MissingTileSet is drawn for tile sets without a generator.
const MissingTileSet = "missing"

var patterns = []string{"", "dots", "stripes", "cross"}

// grassyTile: rows 0-1 rocks and trees, rows 2-3 grass, rows 4-5 paths,
// rows 6-7 dark grass.
func grassyTile(i int) *image.RGBA {
	row, col := i/8, i%8
	switch {
	case row == 0:
		return CreateBorderedTile(Lighten(Palette.Rock, float64(col)*0.05), Darken(Palette.Rock, 0.6), 1)
	case row == 1:
		return CreatePatternedTile(Palette.GrassDark, Palette.Tree, patterns[col%len(patterns)])
	case row < 4:
		return CreatePatternedTile(Palette.Grass, Palette.GrassDark, patterns[col%len(patterns)])
	case row < 6:
		return CreatePatternedTile(Palette.Path, Darken(Palette.Path, 0.8), patterns[col%len(patterns)])
	default:
		return CreatePatternedTile(Palette.GrassDark, Palette.Grass, patterns[col%len(patterns)])
	}
}

// waterTile: shallow water with foam on the first two rows, deep water after.
func waterTile(i int) *image.RGBA {
	row, col := i/8, i%8
	if row < 2 {
		return CreatePatternedTile(Palette.Water, Palette.Foam, patterns[col%len(patterns)])
	}
	return CreatePatternedTile(Palette.WaterDeep, Palette.Water, patterns[col%len(patterns)])
}

func missingTile(i int) *image.RGBA {
	return CreatePatternedTile(Palette.Missing, Palette.Outline, "checker")
}

// GenerateTileSet draws an n×n atlas for a tile set. Unknown ids get the
// missing-texture atlas.
func GenerateTileSet(id string, n int) *image.RGBA {
	gen, ok := TileSets[id]
	if !ok {
		gen = missingTile
	}
	tiles := make([]*image.RGBA, n*n)
	for i := range tiles {
		tiles[i] = gen(i)
	}
	return CreateAtlas(tiles, n)
}

// GenerateTileSets draws every registered atlas plus the missing atlas in
// parallel.
func GenerateTileSets(ctx context.Context, n int) (map[string]*image.RGBA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("atlas width %d: must be positive", n)
	}

	ids := make([]string, 0, len(TileSets)+1)
	for id := range TileSets {
		ids = append(ids, id)
	}
	ids = append(ids, MissingTileSet)

	images := make([]*image.RGBA, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("generate %s: %w", id, err)
			}
			images[i] = GenerateTileSet(id, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*image.RGBA, len(ids))
	for i, id := range ids {
		out[id] = images[i]
	}
	return out, nil
}
