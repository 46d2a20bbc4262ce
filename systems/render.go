package systems

import (
	"image"
	"sort"

	"github.com/automoto/tilegarden/assets"
	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/shared/gamemath"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	trianglesOp = &ebiten.DrawTrianglesOptions{}
)

// DrawMap renders the visible segments, one DrawTriangles call per
// material batch. Segment meshes are rebuilt only when the segment changed.
func DrawMap(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.GroundColor)

	tm := GetTileMap(ecs)
	if tm == nil {
		return
	}
	if tm.Meshes == nil {
		tm.Meshes = make(map[tilemap.SegmentCoord]*components.SegmentMesh)
	}

	view := CameraView(ecs)
	m := tm.Map
	size := m.Config().SegmentSize

	lo, hi := view.Bounds()
	first, last := visibleTiles(m, lo, hi)
	if first.X > last.X || first.Y > last.Y {
		return
	}
	segLo := tilemap.SegmentOf(first, size)
	segHi := tilemap.SegmentOf(last, size)

	for sy := segLo.Y; sy <= segHi.Y; sy++ {
		for sx := segLo.X; sx <= segHi.X; sx++ {
			seg := m.Segments().Segment(tilemap.SegmentCoord{X: sx, Y: sy})
			mesh := tm.Meshes[seg.Coord]
			if mesh == nil || mesh.Version != seg.Version {
				mesh = buildSegmentMesh(m, seg)
				tm.Meshes[seg.Coord] = mesh
			}
			for i := range mesh.Batches {
				drawBatch(tm, &mesh.Batches[i], view, screen)
			}
		}
	}
}

// visibleTiles returns the inclusive tile range on screen, clipped to the
// ground plane.
func visibleTiles(m *tilemap.Map, lo, hi math.Vec2) (first, last tilemap.Coord) {
	first = m.TileAt(lo)
	last = m.TileAt(hi)
	bLo, bHi := m.TileBounds()
	first.X = max(first.X, bLo.X)
	first.Y = max(first.Y, bLo.Y)
	last.X = min(last.X, bHi.X)
	last.Y = min(last.Y, bHi.Y)
	return first, last
}

// buildSegmentMesh converts a segment's quads into world-space vertices
// grouped by material. Quads off the ground plane are left out.
func buildSegmentMesh(m *tilemap.Map, seg *tilemap.Segment) *components.SegmentMesh {
	tileSize := m.Config().TileSize
	bLo, bHi := m.TileBounds()
	origin := seg.Origin()

	mesh := &components.SegmentMesh{Version: seg.Version}
	for _, b := range seg.Batches() {
		atlas := assets.TileSetImage(m.Materials().At(b.Material))
		if atlas == nil {
			continue
		}
		aw := float32(atlas.Bounds().Dx())
		ah := float32(atlas.Bounds().Dy())

		batch := components.MeshBatch{Material: b.Material}
		for _, local := range b.Locals {
			c := origin.Add(local)
			if c.X < bLo.X || c.Y < bLo.Y || c.X > bHi.X || c.Y > bHi.Y {
				continue
			}
			q := seg.Quad(local)
			uv := q.UV.Corners()
			w := m.TileOrigin(c)
			corners := [4][2]float32{
				{float32(w.X), float32(w.Y)},
				{float32(w.X + tileSize), float32(w.Y)},
				{float32(w.X), float32(w.Y + tileSize)},
				{float32(w.X + tileSize), float32(w.Y + tileSize)},
			}

			base := uint16(len(batch.Vertices))
			for i, p := range corners {
				batch.Vertices = append(batch.Vertices, ebiten.Vertex{
					DstX:   p[0],
					DstY:   p[1],
					SrcX:   uv[i*2] * aw,
					SrcY:   uv[i*2+1] * ah,
					ColorR: 1,
					ColorG: 1,
					ColorB: 1,
					ColorA: 1,
				})
			}
			batch.Indices = append(batch.Indices,
				base, base+1, base+2,
				base+1, base+3, base+2,
			)
		}
		if len(batch.Indices) > 0 {
			mesh.Batches = append(mesh.Batches, batch)
		}
	}
	return mesh
}

func drawBatch(tm *components.TileMapData, batch *components.MeshBatch, view gamemath.View, screen *ebiten.Image) {
	atlas := assets.TileSetImage(tm.Map.Materials().At(batch.Material))
	if atlas == nil {
		return
	}

	tm.Screen = tm.Screen[:0]
	for _, v := range batch.Vertices {
		x, y := view.WorldToScreen(math.Vec2{X: float64(v.DstX), Y: float64(v.DstY)})
		v.DstX = float32(x)
		v.DstY = float32(y)
		tm.Screen = append(tm.Screen, v)
	}

	trianglesOp.Filter = ebiten.FilterNearest
	screen.DrawTriangles(tm.Screen, batch.Indices, atlas, trianglesOp)
}

// DrawEntities draws animated entities back to front by depth. Sprites are
// anchored at bottom-center and lifted by the entity height.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	view := CameraView(ecs)
	lo, hi := view.Bounds()

	var visible []*donburi.Entry
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		p := components.Transform.Get(e).Position
		// one world unit of padding for sprites straddling the edge
		if p.X < lo.X-1 || p.X > hi.X+1 || p.Y < lo.Y-1 || p.Y > hi.Y+1 {
			return
		}
		visible = append(visible, e)
	})
	sort.SliceStable(visible, func(i, j int) bool {
		return components.Transform.Get(visible[i]).Position.Y < components.Transform.Get(visible[j]).Position.Y
	})

	for _, e := range visible {
		anim := components.Animation.Get(e)
		img := anim.Frame()
		if img == nil {
			continue
		}
		transform := components.Transform.Get(e)

		lift := transform.Height * cfg.Camera.HeightScale
		size := cfg.Player.Size
		if e.HasComponent(components.Butterfly) {
			butterfly := components.Butterfly.Get(e)
			lift += butterfly.BobOffset * view.PixelsPerUnit
			size = cfg.Butterfly.Size
		}

		x, y := view.WorldToScreen(transform.Position)
		scale := size * view.PixelsPerUnit / float64(anim.FrameWidth)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(x, y-lift)
		screen.DrawImage(img, drawOp)
	}
}

// DrawPenPreview shows the pen under the cursor while the editor is idle:
// the tile tinted over the hovered cell, or the object sprite at the cursor.
func DrawPenPreview(ecs *ecs.ECS, screen *ebiten.Image) {
	ed := GetEditor(ecs)
	tm := GetTileMap(ecs)
	if ed == nil || tm == nil || ed.Editor.State() != editor.Idle || !ed.HoverHit {
		return
	}
	view := CameraView(ecs)
	pen := ed.Editor.Pen()

	switch pen.Mode {
	case editor.PenTile:
		src := tileImage(pen.Tile)
		if src == nil {
			return
		}
		x, y := view.WorldToScreen(tm.Map.TileOrigin(ed.Hover))
		drawTinted(screen, src, x, y, tm.Map.Config().TileSize*view.PixelsPerUnit)

		px := float32(tm.Map.Config().TileSize * view.PixelsPerUnit)
		vector.StrokeRect(screen, float32(x), float32(y), px, px, 1, cfg.UI.CursorColor, false)
	case editor.PenObject:
		src := objectImage(pen.Object)
		if src == nil {
			return
		}
		input := getOrCreateInput(ecs)
		edge := cfg.Butterfly.Size * view.PixelsPerUnit
		drawTinted(screen, src, float64(input.CursorX)-edge/2, float64(input.CursorY)-edge, edge)
	}
}

// drawTinted draws src scaled to an edge×edge square at (x, y) through the
// tint shader.
func drawTinted(screen, src *ebiten.Image, x, y, edge float64) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if assets.TintShader == nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(edge/float64(w), edge/float64(h))
		drawOp.GeoM.Translate(x, y)
		drawOp.ColorScale.ScaleAlpha(float32(cfg.Editor.PreviewAlpha))
		screen.DrawImage(src, drawOp)
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Scale(edge/float64(w), edge/float64(h))
	op.GeoM.Translate(x, y)
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Tint": []float32{1, 1, 0.8, float32(cfg.Editor.PreviewAlpha)},
	}
	screen.DrawRectShader(w, h, assets.TintShader, op)
}

// tileImage cuts a single tile out of its atlas.
func tileImage(t tilemap.Tile) *ebiten.Image {
	atlas := assets.TileSetImage(t.TileSet)
	if atlas == nil {
		return nil
	}
	col, row := tilemap.AtlasCell(t.Index, cfg.Map.ImageXTileCount)
	ts := placeholders.TileSize
	rect := image.Rect(col*ts, row*ts, (col+1)*ts, (row+1)*ts)
	return atlas.SubImage(rect.Add(atlas.Bounds().Min)).(*ebiten.Image)
}

var objectSprites = map[editor.ObjectKind]struct {
	key   string
	state cfg.StateID
}{
	editor.ObjectButterfly: {"butterfly", cfg.Flap},
	editor.ObjectPlayer:    {"player", cfg.Idle},
}

// objectImage returns the first frame of the kind's sheet.
func objectImage(kind editor.ObjectKind) *ebiten.Image {
	sprite, ok := objectSprites[kind]
	if !ok {
		return nil
	}
	ts := placeholders.TileSize
	return assets.GetFrame(sprite.key, sprite.state, 0, image.Rect(0, 0, ts, ts))
}

// DrawEditorPicker draws the browsed tile set's atlas inside the tile
// dialog and outlines the pen's tile.
func DrawEditorPicker(ecs *ecs.ECS, screen *ebiten.Image) {
	ed := GetEditor(ecs)
	if ed == nil || ed.Editor.State() != editor.TileDialog || ed.Picker.Empty() {
		return
	}
	atlas := assets.TileSetImage(ed.Editor.TileSet())
	if atlas == nil {
		return
	}

	x := float64(ed.Picker.Min.X)
	y := float64(ed.Picker.Min.Y) - ed.RevealOffset
	scaleX := float64(ed.Picker.Dx()) / float64(atlas.Bounds().Dx())
	scaleY := float64(ed.Picker.Dy()) / float64(atlas.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(scaleX, scaleY)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(atlas, drawOp)

	pen := ed.Editor.Pen()
	if pen.Mode != editor.PenTile || pen.Tile.TileSet != ed.Editor.TileSet() {
		return
	}
	n := cfg.Map.ImageXTileCount
	col, row := tilemap.AtlasCell(pen.Tile.Index, n)
	cw := float64(ed.Picker.Dx()) / float64(n)
	ch := float64(ed.Picker.Dy()) / float64(n)
	vector.StrokeRect(screen,
		float32(x+float64(col)*cw), float32(y+float64(row)*ch),
		float32(cw), float32(ch), 2, cfg.UI.CursorColor, false)
}
