package systems

import (
	"image/color"

	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/systems/factory"
	"github.com/automoto/tilegarden/tags"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var blockingTileColor = color.RGBA{R: 200, G: 40, B: 40, A: 90}

// DrawDebug outlines the entity colliders and shades blocking tiles.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowColliders {
		return
	}
	view := CameraView(ecs)

	if tm := GetTileMap(ecs); tm != nil {
		lo, hi := view.Bounds()
		first, last := visibleTiles(tm.Map, lo, hi)
		px := float32(tm.Map.Config().TileSize * view.PixelsPerUnit)
		for y := first.Y; y <= last.Y; y++ {
			for x := first.X; x <= last.X; x++ {
				c := tilemap.Coord{X: x, Y: y}
				if !tm.Map.Blocks(c) {
					continue
				}
				sx, sy := view.WorldToScreen(tm.Map.TileOrigin(c))
				vector.FillRect(screen, float32(sx), float32(sy), px, px, blockingTileColor, false)
			}
		}
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		// The ground covers the whole plane.
		if obj.HasTags(tags.ResolvGround) {
			continue
		}
		x, y := view.WorldToScreen(factory.SpaceToWorld(obj.X, obj.Y))
		w := obj.W / cfg.Space.Scale * view.PixelsPerUnit
		h := obj.H / cfg.Space.Scale * view.PixelsPerUnit

		// Cull objects outside viewport
		if x+w < 0 || x > width || y+h < 0 || y > height {
			continue
		}

		c := cfg.UI.ColliderColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
		vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
		vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
	}
}
