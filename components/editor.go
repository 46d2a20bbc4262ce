package components

import (
	"image"

	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EditorData is the singleton wrapping the editor state machine and the
// per-frame facts the overlay shares with the map systems.
type EditorData struct {
	Editor *editor.Editor

	// Screen rectangles covered by overlay widgets. Map clicks inside them
	// are ignored.
	Blockers []image.Rectangle
	// UIClicked is set by widget handlers during the UI update of a frame.
	UIClicked bool

	// Hover is the tile under the cursor, when the pick hit the ground.
	Hover    tilemap.Coord
	HoverHit bool

	LastAction editor.Action
	LastError  string

	// Picker is where the tile dialog's atlas is drawn, below the dialog
	// header. Empty while the tile dialog is closed.
	Picker image.Rectangle
	// Reveal slides the picker in when the tile dialog opens.
	Reveal       *gween.Tween
	RevealOffset float64
}

var Editor = donburi.NewComponentType[EditorData]()
