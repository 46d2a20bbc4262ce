package systems

import (
	"fmt"
	"image"
	"log"

	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/systems/factory"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// worldTarget carries out editor actions against the ECS world.
type worldTarget struct {
	ecs *ecs.ECS
	m   *tilemap.Map
}

func (t worldTarget) Project(p tilemap.Pick) (tilemap.Coord, bool) {
	return t.m.Project(p)
}

func (t worldTarget) PaintTile(c tilemap.Coord, tile tilemap.Tile) error {
	return t.m.PaintTile(c, tile.TileSet, tile.Index)
}

func (t worldTarget) Spawn(kind editor.ObjectKind, at math.Vec2) error {
	_, err := factory.Spawn(t.ecs, kind, at)
	return err
}

// GetEditor returns the editor singleton, or nil before it is created.
func GetEditor(ecs *ecs.ECS) *components.EditorData {
	entry, ok := components.Editor.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Editor.Get(entry)
}

// GetTileMap returns the map singleton, or nil before it is created.
func GetTileMap(ecs *ecs.ECS) *components.TileMapData {
	entry, ok := components.TileMap.First(ecs.World)
	if !ok {
		return nil
	}
	return components.TileMap.Get(entry)
}

// UpdateEditor handles the editor keys and applies the pen to the map.
// Must run after UpdateInput and after the overlay widgets updated.
func UpdateEditor(ecs *ecs.ECS) {
	ed := GetEditor(ecs)
	tm := GetTileMap(ecs)
	if ed == nil || tm == nil {
		return
	}
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionEditorToggle).JustPressed {
		ToggleEditor(ecs)
	}

	updateReveal(ed)

	if !ed.Editor.Enabled() {
		ed.HoverHit = false
		return
	}

	if GetAction(input, cfg.ActionTileDialog).JustPressed {
		OpenTileDialog(ecs)
	}
	if GetAction(input, cfg.ActionObjectDialog).JustPressed {
		OpenObjectDialog(ecs)
	}
	if GetAction(input, cfg.ActionCloseDialog).JustPressed {
		ed.Editor.CloseDialog()
	}

	pick := PickGround(ecs, input.CursorX, input.CursorY)
	ed.Hover, ed.HoverHit = tm.Map.Project(pick)

	cursor := image.Pt(input.CursorX, input.CursorY)
	paint := GetAction(input, cfg.ActionPaint)

	// A click on the atlas picker selects a tile.
	if ed.Editor.State() == editor.TileDialog && paint.JustPressed && cursor.In(ed.Picker) {
		x := float64(cursor.X - ed.Picker.Min.X)
		y := float64(cursor.Y - ed.Picker.Min.Y)
		if ed.Editor.SelectTileAt(x, y, float64(ed.Picker.Dx()), float64(ed.Picker.Dy())) {
			QueueSound(ecs, cfg.SoundSelect)
			SavePen(ed.Editor.Pen())
		}
		return
	}

	if ed.UIClicked || overUI(ed, cursor) {
		return
	}

	if GetAction(input, cfg.ActionEyedropper).JustPressed {
		if tile, ok := tm.Map.PickTile(pick); ok && ed.Editor.Use(tile) {
			QueueSound(ecs, cfg.SoundSelect)
			SavePen(ed.Editor.Pen())
		}
	}

	if !penTriggered(ed.Editor.Pen(), paint) {
		return
	}

	action, err := ed.Editor.Apply(worldTarget{ecs: ecs, m: tm.Map}, pick)
	if err != nil {
		log.Printf("Warning: %v", err)
		ed.LastError = err.Error()
		return
	}
	if action.Kind == editor.ActionNone {
		return
	}
	if action != ed.LastAction || paint.JustPressed {
		QueueSound(ecs, actionSound(action))
	}
	ed.LastAction = action
	ed.LastError = ""
}

// penTriggered reports whether this frame's button state fires the pen. The
// tile pen paints while the button is held; the object pen spawns once per
// click.
func penTriggered(pen editor.Pen, paint components.ActionState) bool {
	if pen.Mode == editor.PenTile && cfg.Editor.PaintHoldRepeat {
		return paint.Pressed
	}
	return paint.JustPressed
}

func actionSound(a editor.Action) cfg.SoundID {
	if a.Kind == editor.ActionSpawn {
		return cfg.SoundSpawn
	}
	return cfg.SoundPaint
}

func overUI(ed *components.EditorData, p image.Point) bool {
	for _, r := range ed.Blockers {
		if p.In(r) {
			return true
		}
	}
	return false
}

// ToggleEditor enables or disables the overlay.
func ToggleEditor(ecs *ecs.ECS) {
	ed := GetEditor(ecs)
	if ed == nil {
		return
	}
	state := ed.Editor.Toggle()
	QueueSound(ecs, cfg.SoundToggle)
	if !state.Enabled() {
		// Free panning ends with the editor.
		if entry, ok := components.Camera.First(ecs.World); ok {
			components.Camera.Get(entry).Pan = math.Vec2{}
		}
	}
}

// OpenTileDialog handles the tile-set icon.
func OpenTileDialog(ecs *ecs.ECS) {
	ed := GetEditor(ecs)
	if ed == nil || !ed.Editor.OpenTileDialog() {
		return
	}
	QueueSound(ecs, cfg.SoundSelect)
	if ed.Editor.State() == editor.TileDialog {
		ed.Reveal = gween.New(float32(PickerSize()), 0, cfg.Editor.RevealDuration, ease.OutCubic)
	}
}

// OpenObjectDialog handles the object icon.
func OpenObjectDialog(ecs *ecs.ECS) {
	ed := GetEditor(ecs)
	if ed == nil || !ed.Editor.OpenObjectDialog() {
		return
	}
	QueueSound(ecs, cfg.SoundSelect)
}

// NextTileSet advances the tile dialog.
func NextTileSet(ecs *ecs.ECS) {
	ed := GetEditor(ecs)
	if ed == nil {
		return
	}
	ed.Editor.NextTileSet()
	QueueSound(ecs, cfg.SoundSelect)
}

// SelectObject picks kind from the object dialog.
func SelectObject(ecs *ecs.ECS, kind editor.ObjectKind) {
	ed := GetEditor(ecs)
	if ed == nil || !ed.Editor.SelectObject(kind) {
		return
	}
	QueueSound(ecs, cfg.SoundSelect)
	SavePen(ed.Editor.Pen())
}

func updateReveal(ed *components.EditorData) {
	if ed.Reveal == nil {
		ed.RevealOffset = 0
		return
	}
	offset, finished := ed.Reveal.Update(1 / float32(cfg.C.TPS))
	ed.RevealOffset = float64(offset)
	if finished {
		ed.Reveal = nil
		ed.RevealOffset = 0
	}
}

// PickerSize is the on-screen edge length of the tile dialog's atlas.
func PickerSize() int {
	return int(float64(cfg.Map.ImageXTileCount*placeholders.TileSize) * cfg.Editor.AtlasScale)
}

// PenLabel describes the active pen for the HUD and toolbar.
func PenLabel(p editor.Pen) string {
	switch p.Mode {
	case editor.PenTile:
		return fmt.Sprintf("%s #%d", p.Tile.TileSet, p.Tile.Index)
	case editor.PenObject:
		return p.Object.String()
	}
	return "none"
}
