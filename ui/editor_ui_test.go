package ui

import (
	goimage "image"
	"testing"

	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/systems"
	"github.com/automoto/tilegarden/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newOverlay(t *testing.T) (*EditorUI, *ecs.ECS) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateEditor(e, []string{"grassy_tiles", "water_tiles"})
	ed := systems.GetEditor(e)
	if !ed.Editor.Toggle().Enabled() {
		t.Fatal("editor did not open")
	}
	return NewEditorUI(e), e
}

func TestSyncBlocksScreenUntilPanelsAreLaidOut(t *testing.T) {
	eui, e := newOverlay(t)
	ed := systems.GetEditor(e)

	eui.Sync()

	full := goimage.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	if len(ed.Blockers) != 1 || ed.Blockers[0] != full {
		t.Fatalf("Blockers before layout = %v, want [%v]", ed.Blockers, full)
	}
}

func TestPublishRectsUsesLaidOutPanels(t *testing.T) {
	eui, e := newOverlay(t)
	ed := systems.GetEditor(e)
	if !ed.Editor.OpenTileDialog() {
		t.Fatal("tile dialog did not open")
	}
	eui.Sync()

	bar := goimage.Rect(4, 4, 300, 28)
	dialog := goimage.Rect(4, 32, 300, 330)
	picker := goimage.Rect(10, 60, 266, 316)
	eui.toolbar.GetWidget().Rect = bar
	eui.tileDialog.GetWidget().Rect = dialog
	eui.picker.GetWidget().Rect = picker

	eui.publishRects(ed)

	if len(ed.Blockers) != 2 || ed.Blockers[0] != bar || ed.Blockers[1] != dialog {
		t.Errorf("Blockers = %v, want [%v %v]", ed.Blockers, bar, dialog)
	}
	if ed.Picker != picker {
		t.Errorf("Picker = %v, want %v", ed.Picker, picker)
	}
}

func TestPublishRectsClearsClosedDialog(t *testing.T) {
	eui, e := newOverlay(t)
	ed := systems.GetEditor(e)
	ed.Editor.OpenTileDialog()
	eui.Sync()
	eui.toolbar.GetWidget().Rect = goimage.Rect(4, 4, 300, 28)
	eui.tileDialog.GetWidget().Rect = goimage.Rect(4, 32, 300, 330)
	eui.picker.GetWidget().Rect = goimage.Rect(10, 60, 266, 316)
	eui.publishRects(ed)

	ed.Editor.CloseDialog()
	eui.Sync()

	if ed.Editor.State() != editor.Idle {
		t.Fatalf("state = %v, want idle", ed.Editor.State())
	}
	if len(ed.Blockers) != 1 || ed.Blockers[0] != goimage.Rect(4, 4, 300, 28) {
		t.Errorf("Blockers = %v, want toolbar only", ed.Blockers)
	}
	if !ed.Picker.Empty() {
		t.Errorf("Picker = %v after closing the dialog", ed.Picker)
	}
}
