package ui

import (
	"bytes"
	goimage "image"
	"image/color"

	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI holds the ebitenui overlay of the level editor: the toolbar and
// the tile and object dialogs.
type EditorUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	root         *widget.Container
	toolbar      *widget.Container
	tileDialog   *widget.Container
	objectDialog *widget.Container
	picker       *widget.Container

	// Widget references for updates
	penLabel     *widget.Label
	tileSetLabel *widget.Label
	tilesButton  *widget.Button
	objButton    *widget.Button

	shown map[*widget.Container]bool

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face
}

// NewEditorUI builds the overlay for the editor singleton in e.
func NewEditorUI(e *ecs.ECS) *EditorUI {
	eui := &EditorUI{
		ecs:   e,
		shown: make(map[*widget.Container]bool),
	}

	eui.loadFonts()
	eui.buildUI()

	return eui
}

func (eui *EditorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	eui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	eui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (eui *EditorUI) buildUI() {
	// Transparent root; only the panels block map clicks
	eui.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	eui.toolbar = eui.buildToolbar()
	eui.tileDialog = eui.buildTileDialog()
	eui.objectDialog = eui.buildObjectDialog()

	eui.UI = &ebitenui.UI{
		Container: eui.root,
	}
}

func (eui *EditorUI) panel(direction widget.Direction) *widget.Container {
	padding := widget.NewInsetsSimple(cfg.Editor.DialogPadding)
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(direction),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
}

func (eui *EditorUI) buildToolbar() *widget.Container {
	bar := eui.panel(widget.DirectionHorizontal)

	eui.tilesButton = eui.button("Tiles", func() {
		systems.OpenTileDialog(eui.ecs)
	})
	bar.AddChild(eui.tilesButton)

	eui.objButton = eui.button("Objects", func() {
		systems.OpenObjectDialog(eui.ecs)
	})
	bar.AddChild(eui.objButton)

	bar.AddChild(eui.button("Exit", func() {
		systems.ToggleEditor(eui.ecs)
	}))

	eui.penLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.smallFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	bar.AddChild(eui.penLabel)

	return bar
}

func (eui *EditorUI) buildTileDialog() *widget.Container {
	dialog := eui.panel(widget.DirectionVertical)

	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	eui.tileSetLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	header.AddChild(eui.tileSetLabel)
	header.AddChild(eui.button("Next Tile Set", func() {
		systems.NextTileSet(eui.ecs)
	}))
	header.AddChild(eui.button("Close", func() {
		eui.closeDialog()
	}))
	dialog.AddChild(header)

	// Empty area the atlas is drawn into after the UI layout
	size := systems.PickerSize()
	eui.picker = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(size, size),
		),
	)
	dialog.AddChild(eui.picker)

	return dialog
}

func (eui *EditorUI) buildObjectDialog() *widget.Container {
	dialog := eui.panel(widget.DirectionVertical)

	dialog.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Objects", &eui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	))
	for _, kind := range editor.ObjectKinds() {
		k := kind // Capture for closure
		dialog.AddChild(eui.button(k.String(), func() {
			systems.SelectObject(eui.ecs, k)
		}))
	}
	dialog.AddChild(eui.button("Close", func() {
		eui.closeDialog()
	}))

	return dialog
}

func (eui *EditorUI) closeDialog() {
	if ed := systems.GetEditor(eui.ecs); ed != nil {
		ed.Editor.CloseDialog()
	}
}

// button creates a toolbar-style button. Every click marks the frame so the
// map does not also receive it.
func (eui *EditorUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Editor.IconSize*2, cfg.Editor.IconSize),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &eui.smallFace, &widget.ButtonTextColor{
			Idle:     cfg.UI.TextColor,
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ed := systems.GetEditor(eui.ecs); ed != nil {
				ed.UIClicked = true
			}
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Update runs the widgets for this frame. Call before the ECS update so the
// editor system sees which clicks the overlay consumed.
func (eui *EditorUI) Update() {
	ed := systems.GetEditor(eui.ecs)
	if ed != nil {
		ed.UIClicked = false
	}
	eui.UI.Update()
	// Panels shown by the last Sync are laid out by now.
	if ed != nil {
		eui.publishRects(ed)
	}
}

// Sync shows the panels matching the editor state, refreshes the labels
// and publishes the panel rectangles to the editor.
func (eui *EditorUI) Sync() {
	ed := systems.GetEditor(eui.ecs)
	if ed == nil {
		return
	}
	state := ed.Editor.State()

	eui.setShown(eui.toolbar, state.Enabled())
	eui.setShown(eui.tileDialog, state == editor.TileDialog)
	eui.setShown(eui.objectDialog, state == editor.ObjectDialog)

	eui.penLabel.Label = "pen: " + systems.PenLabel(ed.Editor.Pen())
	eui.tileSetLabel.Label = ed.Editor.TileSet()

	setButtonLabel(eui.tilesButton, "Tiles", state == editor.TileDialog)
	setButtonLabel(eui.objButton, "Objects", state == editor.ObjectDialog)

	eui.publishRects(ed)
}

// setButtonLabel marks the button of the open dialog.
func setButtonLabel(b *widget.Button, label string, active bool) {
	textWidget := b.Text()
	if textWidget == nil {
		return
	}
	if active {
		label = "[" + label + "]"
	}
	textWidget.Label = label
}

func (eui *EditorUI) setShown(c *widget.Container, show bool) {
	if eui.shown[c] == show {
		return
	}
	if show {
		eui.root.AddChild(c)
	} else {
		eui.root.RemoveChild(c)
	}
	eui.shown[c] = show
}

// publishRects hands the shown panels to the editor system. A panel that
// has not been laid out yet blocks the whole screen for that frame.
func (eui *EditorUI) publishRects(ed *components.EditorData) {
	ed.Blockers = ed.Blockers[:0]
	ed.Picker = goimage.Rectangle{}
	for _, c := range []*widget.Container{eui.toolbar, eui.tileDialog, eui.objectDialog} {
		if !eui.shown[c] {
			continue
		}
		r := c.GetWidget().Rect
		if r.Empty() {
			ed.Blockers = append(ed.Blockers[:0], goimage.Rect(0, 0, cfg.C.Width, cfg.C.Height))
			return
		}
		ed.Blockers = append(ed.Blockers, r)
	}

	if eui.shown[eui.tileDialog] {
		ed.Picker = eui.picker.GetWidget().Rect
	}
}

// Draw renders the overlay on top of the world, then the atlas inside the
// tile dialog.
func (eui *EditorUI) Draw(screen *ebiten.Image) {
	eui.UI.Draw(screen)
	systems.DrawEditorPicker(eui.ecs, screen)
}
