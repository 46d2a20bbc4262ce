// Package editor implements the in-scene level editor as an explicit state
// machine. It knows nothing about rendering or input devices: callers feed it
// events and a Target that performs the paint and spawn actions.
package editor

import (
	"fmt"

	"github.com/automoto/tilegarden/tilemap"
	"github.com/yohamta/donburi/features/math"
)

type State int

const (
	Disabled State = iota
	Idle
	TileDialog
	ObjectDialog
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Idle:
		return "idle"
	case TileDialog:
		return "tile-dialog"
	case ObjectDialog:
		return "object-dialog"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Enabled reports whether the editor overlay is shown.
func (s State) Enabled() bool {
	return s != Disabled
}

type PenMode int

const (
	PenNone PenMode = iota
	PenTile
	PenObject
)

// Pen is the action performed when the operator clicks the map.
type Pen struct {
	Mode   PenMode
	Tile   tilemap.Tile
	Object ObjectKind
}

// Target carries out pen actions against the world.
type Target interface {
	Project(p tilemap.Pick) (tilemap.Coord, bool)
	PaintTile(c tilemap.Coord, t tilemap.Tile) error
	Spawn(kind ObjectKind, at math.Vec2) error
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPaint
	ActionSpawn
)

// Action describes what Apply did.
type Action struct {
	Kind   ActionKind
	Coord  tilemap.Coord
	Tile   tilemap.Tile
	Object ObjectKind
	At     math.Vec2
}

type Editor struct {
	state      State
	pen        Pen
	tileSets   []string
	tileSet    int
	atlasTiles int
}

// New creates a disabled editor browsing tileSets, each an atlasTiles×atlasTiles
// grid. The pen starts on tile 0 of the first tile set.
func New(tileSets []string, atlasTiles int) *Editor {
	e := &Editor{
		tileSets:   append([]string(nil), tileSets...),
		atlasTiles: atlasTiles,
	}
	if len(e.tileSets) > 0 {
		e.pen = Pen{Mode: PenTile, Tile: tilemap.Tile{TileSet: e.tileSets[0]}}
	}
	return e
}

func (e *Editor) State() State { return e.state }
func (e *Editor) Enabled() bool { return e.state.Enabled() }
func (e *Editor) Pen() Pen { return e.pen }

// TileSet returns the tile set shown in the tile dialog.
func (e *Editor) TileSet() string {
	if len(e.tileSets) == 0 {
		return ""
	}
	return e.tileSets[e.tileSet]
}

// Toggle flips between disabled and enabled. Disabling closes any dialog.
func (e *Editor) Toggle() State {
	switch e.state {
	case Disabled:
		e.state = Idle
	case Idle, TileDialog, ObjectDialog:
		e.state = Disabled
	}
	return e.state
}

// OpenTileDialog handles the tile-set icon. Pressing it while the tile
// dialog is open closes the dialog.
func (e *Editor) OpenTileDialog() bool {
	switch e.state {
	case Disabled:
		return false
	case Idle, ObjectDialog:
		if i := e.indexOf(e.pen.Tile.TileSet); e.pen.Mode == PenTile && i >= 0 {
			e.tileSet = i
		}
		e.state = TileDialog
	case TileDialog:
		e.state = Idle
	}
	return true
}

// OpenObjectDialog handles the object icon. Pressing it while the object
// dialog is open closes the dialog.
func (e *Editor) OpenObjectDialog() bool {
	switch e.state {
	case Disabled:
		return false
	case Idle, TileDialog:
		e.state = ObjectDialog
	case ObjectDialog:
		e.state = Idle
	}
	return true
}

// CloseDialog returns to idle from either dialog.
func (e *Editor) CloseDialog() {
	switch e.state {
	case TileDialog, ObjectDialog:
		e.state = Idle
	case Disabled, Idle:
	}
}

// NextTileSet advances the tile dialog to the next tile set, wrapping around.
func (e *Editor) NextTileSet() string {
	if e.state != TileDialog || len(e.tileSets) == 0 {
		return e.TileSet()
	}
	e.tileSet = (e.tileSet + 1) % len(e.tileSets)
	return e.TileSet()
}

// SelectTile picks index from the tile set shown in the dialog, makes it the
// pen and closes the dialog.
func (e *Editor) SelectTile(index int) bool {
	if e.state != TileDialog || len(e.tileSets) == 0 {
		return false
	}
	if index < 0 || index >= e.atlasTiles*e.atlasTiles {
		return false
	}
	e.pen = Pen{Mode: PenTile, Tile: tilemap.Tile{TileSet: e.TileSet(), Index: index}}
	e.state = Idle
	return true
}

// SelectTileAt picks the tile under (x, y) in a w×h picture of the atlas.
func (e *Editor) SelectTileAt(x, y, w, h float64) bool {
	return e.SelectTile(tilemap.AtlasIndexAt(x, y, w, h, e.atlasTiles))
}

// SelectObject makes kind the pen and closes the dialog.
func (e *Editor) SelectObject(kind ObjectKind) bool {
	if e.state != ObjectDialog || !kind.Valid() {
		return false
	}
	e.pen = Pen{Mode: PenObject, Object: kind}
	e.state = Idle
	return true
}

// Use sets the pen to an existing tile, as picked from the map.
func (e *Editor) Use(t tilemap.Tile) bool {
	if !e.Enabled() || t.Index < 0 {
		return false
	}
	e.pen = Pen{Mode: PenTile, Tile: t}
	return true
}

// SetPen restores a pen, e.g. from saved preferences. Invalid pens are ignored.
func (e *Editor) SetPen(p Pen) bool {
	switch p.Mode {
	case PenTile:
		if p.Tile.Index < 0 || p.Tile.Index >= e.atlasTiles*e.atlasTiles || e.indexOf(p.Tile.TileSet) < 0 {
			return false
		}
	case PenObject:
		if !p.Object.Valid() {
			return false
		}
	case PenNone:
	default:
		return false
	}
	e.pen = p
	return true
}

// Apply performs the pen action at the picked position. It only acts while
// idle; a missed pick or an empty pen does nothing.
func (e *Editor) Apply(target Target, pick tilemap.Pick) (Action, error) {
	if e.state != Idle || !pick.Hit {
		return Action{}, nil
	}

	switch e.pen.Mode {
	case PenTile:
		c, ok := target.Project(pick)
		if !ok {
			return Action{}, nil
		}
		if err := target.PaintTile(c, e.pen.Tile); err != nil {
			return Action{}, fmt.Errorf("paint %v: %w", c, err)
		}
		return Action{Kind: ActionPaint, Coord: c, Tile: e.pen.Tile}, nil
	case PenObject:
		c, _ := target.Project(pick)
		if err := target.Spawn(e.pen.Object, pick.Point); err != nil {
			return Action{}, fmt.Errorf("spawn %s: %w", e.pen.Object, err)
		}
		return Action{Kind: ActionSpawn, Coord: c, Object: e.pen.Object, At: pick.Point}, nil
	}
	return Action{}, nil
}

func (e *Editor) indexOf(tileSet string) int {
	for i, ts := range e.tileSets {
		if ts == tileSet {
			return i
		}
	}
	return -1
}
