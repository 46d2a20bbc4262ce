package editor

import (
	"errors"
	"testing"

	"github.com/automoto/tilegarden/tilemap"
	"github.com/yohamta/donburi/features/math"
)

type fakeTarget struct {
	m       *tilemap.Map
	spawned []ObjectKind
	at      []math.Vec2
	err     error
}

func (f *fakeTarget) Project(p tilemap.Pick) (tilemap.Coord, bool) { return f.m.Project(p) }

func (f *fakeTarget) PaintTile(c tilemap.Coord, t tilemap.Tile) error {
	if f.err != nil {
		return f.err
	}
	return f.m.PaintTile(c, t.TileSet, t.Index)
}

func (f *fakeTarget) Spawn(kind ObjectKind, at math.Vec2) error {
	if f.err != nil {
		return f.err
	}
	f.spawned = append(f.spawned, kind)
	f.at = append(f.at, at)
	return nil
}

func newEditor() *Editor {
	return New([]string{"grassy_tiles", "water_tiles"}, 8)
}

func hit(x, y float64) tilemap.Pick {
	return tilemap.Pick{Hit: true, Point: math.Vec2{X: x, Y: y}}
}

func TestToggle(t *testing.T) {
	e := newEditor()
	if e.State() != Disabled {
		t.Fatalf("initial state = %v", e.State())
	}
	if e.Toggle() != Idle {
		t.Fatalf("toggle from disabled = %v", e.State())
	}
	e.OpenTileDialog()
	if e.Toggle() != Disabled {
		t.Fatalf("toggle from tile dialog = %v", e.State())
	}
}

func TestDialogTransitions(t *testing.T) {
	tests := []struct {
		name  string
		steps func(e *Editor)
		want  State
	}{
		{"dialogs ignored while disabled", func(e *Editor) { e.OpenTileDialog(); e.OpenObjectDialog() }, Disabled},
		{"tile icon opens tile dialog", func(e *Editor) { e.Toggle(); e.OpenTileDialog() }, TileDialog},
		{"object icon opens object dialog", func(e *Editor) { e.Toggle(); e.OpenObjectDialog() }, ObjectDialog},
		{"same icon closes dialog", func(e *Editor) { e.Toggle(); e.OpenTileDialog(); e.OpenTileDialog() }, Idle},
		{"other icon switches dialog", func(e *Editor) { e.Toggle(); e.OpenTileDialog(); e.OpenObjectDialog() }, ObjectDialog},
		{"close dialog", func(e *Editor) { e.Toggle(); e.OpenObjectDialog(); e.CloseDialog() }, Idle},
		{"select tile closes dialog", func(e *Editor) { e.Toggle(); e.OpenTileDialog(); e.SelectTile(3) }, Idle},
		{"select object closes dialog", func(e *Editor) { e.Toggle(); e.OpenObjectDialog(); e.SelectObject(ObjectButterfly) }, Idle},
		{"select tile outside dialog ignored", func(e *Editor) { e.Toggle(); e.SelectTile(3) }, Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor()
			tt.steps(e)
			if e.State() != tt.want {
				t.Errorf("state = %v, want %v", e.State(), tt.want)
			}
		})
	}
}

func TestSelectTileUsesBrowsedTileSet(t *testing.T) {
	e := newEditor()
	e.Toggle()
	e.OpenTileDialog()
	if got := e.NextTileSet(); got != "water_tiles" {
		t.Fatalf("NextTileSet = %q", got)
	}
	if !e.SelectTileAt(70, 70, 512, 512) {
		t.Fatal("SelectTileAt rejected a point inside the atlas")
	}

	want := Pen{Mode: PenTile, Tile: tilemap.Tile{TileSet: "water_tiles", Index: 9}}
	if e.Pen() != want {
		t.Errorf("pen = %+v, want %+v", e.Pen(), want)
	}

	e.OpenTileDialog()
	if e.NextTileSet() != "grassy_tiles" {
		t.Error("NextTileSet should wrap around")
	}
}

func TestSelectInvalid(t *testing.T) {
	e := newEditor()
	e.Toggle()
	e.OpenTileDialog()
	if e.SelectTile(64) || e.SelectTile(-1) {
		t.Error("out-of-atlas index accepted")
	}
	e.OpenObjectDialog()
	if e.SelectObject(ObjectNone) || e.SelectObject(ObjectKind(42)) {
		t.Error("invalid object kind accepted")
	}
	if e.State() != ObjectDialog {
		t.Errorf("state = %v after rejected selections", e.State())
	}
}

func TestApplyPaintsTile(t *testing.T) {
	target := &fakeTarget{m: tilemap.New(tilemap.DefaultConfig())}
	e := newEditor()
	e.Toggle()
	e.OpenTileDialog()
	e.SelectTile(33)

	action, err := e.Apply(target, hit(0.1, 0.6))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := tilemap.Tile{TileSet: "grassy_tiles", Index: 33}
	if action.Kind != ActionPaint || action.Coord != (tilemap.Coord{X: 5, Y: 6}) || action.Tile != want {
		t.Errorf("action = %+v", action)
	}
	if got := target.m.Get(tilemap.Coord{X: 5, Y: 6}); got != want {
		t.Errorf("painted tile = %v, want %v", got, want)
	}
}

func TestApplySpawnsObject(t *testing.T) {
	target := &fakeTarget{m: tilemap.New(tilemap.DefaultConfig())}
	e := newEditor()
	e.Toggle()
	e.OpenObjectDialog()
	e.SelectObject(ObjectPlayer)

	action, err := e.Apply(target, hit(1.25, -0.75))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if action.Kind != ActionSpawn || len(target.spawned) != 1 || target.spawned[0] != ObjectPlayer {
		t.Fatalf("action = %+v, spawned = %v", action, target.spawned)
	}
	if target.at[0] != (math.Vec2{X: 1.25, Y: -0.75}) {
		t.Errorf("spawned at %v", target.at[0])
	}
}

func TestApplyNoOps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Editor)
		pick  tilemap.Pick
	}{
		{"disabled", func(e *Editor) {}, hit(0, 0)},
		{"dialog open", func(e *Editor) { e.Toggle(); e.OpenTileDialog() }, hit(0, 0)},
		{"missed pick", func(e *Editor) { e.Toggle() }, tilemap.Pick{}},
		{"empty pen", func(e *Editor) { e.Toggle(); e.SetPen(Pen{}) }, hit(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &fakeTarget{m: tilemap.New(tilemap.DefaultConfig())}
			e := newEditor()
			tt.setup(e)
			action, err := e.Apply(target, tt.pick)
			if err != nil || action.Kind != ActionNone {
				t.Errorf("Apply = %+v, %v; want no-op", action, err)
			}
			if target.m.Tiles().Len() != 0 || len(target.spawned) != 0 {
				t.Error("no-op apply changed the world")
			}
		})
	}
}

func TestApplyWrapsTargetError(t *testing.T) {
	boom := errors.New("boom")
	target := &fakeTarget{m: tilemap.New(tilemap.DefaultConfig()), err: boom}
	e := newEditor()
	e.Toggle()

	if _, err := e.Apply(target, hit(0, 0)); !errors.Is(err, boom) {
		t.Errorf("Apply error = %v, want wrapped boom", err)
	}
}

func TestUse(t *testing.T) {
	e := newEditor()
	tile := tilemap.Tile{TileSet: "water_tiles", Index: 5}

	if e.Use(tile) {
		t.Error("Use accepted while disabled")
	}
	e.Toggle()
	if e.Use(tilemap.Tile{TileSet: "water_tiles", Index: -1}) {
		t.Error("Use accepted a negative index")
	}
	if !e.Use(tile) || e.Pen().Tile != tile || e.Pen().Mode != PenTile {
		t.Errorf("pen after Use = %+v", e.Pen())
	}
}

func TestParseObjectKind(t *testing.T) {
	if k, ok := ParseObjectKind("butterfly"); !ok || k != ObjectButterfly {
		t.Errorf("ParseObjectKind(butterfly) = %v, %v", k, ok)
	}
	if _, ok := ParseObjectKind("none"); ok {
		t.Error("none should not parse as a placeable kind")
	}
	if _, ok := ParseObjectKind("dragon"); ok {
		t.Error("unknown kind parsed")
	}
}
