package assets

import (
	"context"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

var (
	tileSets        map[string]*ebiten.Image
	animationLoader *AnimationLoader
)

// MustLoadSeedLevel parses an embedded TMX level, centred on the grid offset.
func MustLoadSeedLevel(path string) *leveldata.Level {
	level, err := leveldata.Load(assetFS, path, config.Map.GridOffset)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", path, err))
	}
	return level
}

// AnimationLoader caches sprite sheets and the frames cut from them.
type AnimationLoader struct {
	sheets     map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		sheets:     make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func sheetKey(key string, state config.StateID) string {
	return fmt.Sprintf("%s/%s", key, state.String())
}

// AddSheet registers the sheet drawn for key in state.
func (l *AnimationLoader) AddSheet(key string, state config.StateID, img image.Image) {
	l.sheets[sheetKey(key, state)] = ebiten.NewImageFromImage(img)
}

// MustGetSheet returns a registered sheet and panics on unknown keys.
func (l *AnimationLoader) MustGetSheet(key string, state config.StateID) *ebiten.Image {
	sheet, ok := l.sheets[sheetKey(key, state)]
	if !ok {
		panic(fmt.Sprintf("No sprite sheet for %s", sheetKey(key, state)))
	}
	return sheet
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(key string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	k := fmt.Sprintf("%s/%d", sheetKey(key, state), frameIndex)
	if img, ok := l.frameCache[k]; ok {
		return img
	}

	frame := l.MustGetSheet(key, state).SubImage(srcRect).(*ebiten.Image)
	l.frameCache[k] = frame

	return frame
}

// LoadAssets draws the placeholder tile sets and sprite sheets. The atlases
// are generated in parallel.
func LoadAssets(ctx context.Context) error {
	atlases, err := placeholders.GenerateTileSets(ctx, config.Map.ImageXTileCount)
	if err != nil {
		return fmt.Errorf("generate tile sets: %w", err)
	}

	tileSets = make(map[string]*ebiten.Image, len(atlases))
	for id, img := range atlases {
		tileSets[id] = ebiten.NewImageFromImage(img)
	}

	animationLoader = NewAnimationLoader()
	animationLoader.AddSheet("player", config.Idle, placeholders.PlayerSheet())
	animationLoader.AddSheet("butterfly", config.Flap, placeholders.ButterflySheet())

	return nil
}

// TileSetImage returns the atlas of a tile set, or the missing atlas for
// ids without one.
func TileSetImage(id string) *ebiten.Image {
	if img, ok := tileSets[id]; ok {
		return img
	}
	if _, ok := tileSets[placeholders.MissingTileSet]; !ok {
		log.Printf("Warning: tile set %q requested before LoadAssets", id)
		return nil
	}
	return tileSets[placeholders.MissingTileSet]
}

func GetSheet(key string, state config.StateID) *ebiten.Image {
	return animationLoader.MustGetSheet(key, state)
}

func GetFrame(key string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(key, state, frameIndex, srcRect)
}
