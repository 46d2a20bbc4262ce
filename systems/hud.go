package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var hudFace text.Face

func getHUDFace() text.Face {
	if hudFace == nil {
		if !fonts.Loaded(fonts.HUDMono) {
			fonts.LoadDefaults(cfg.UI.HUDFontSize)
		}
		hudFace = text.NewGoXFace(fonts.HUDMono.Get())
	}
	return hudFace
}

// DrawHUD prints the editor status in the bottom-left corner: the pen, the
// tile under the pointer and the last action.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	ed := GetEditor(ecs)
	if ed == nil {
		return
	}

	lines := hudLines(ed)
	face := getHUDFace()
	lineHeight := face.Metrics().HAscent + face.Metrics().HDescent + 2

	y := float64(screen.Bounds().Dy()) - cfg.UI.HUDMargin - lineHeight*float64(len(lines))
	for _, line := range lines {
		drawHUDText(screen, line.text, line.color, cfg.UI.HUDMargin, y)
		y += lineHeight
	}
}

type hudLine struct {
	text  string
	color color.Color
}

func hudLines(ed *components.EditorData) []hudLine {
	if !ed.Editor.Enabled() {
		return []hudLine{{"E: editor  F1: colliders  -/+: volume", cfg.UI.HUDTextColor}}
	}

	lines := []hudLine{
		{fmt.Sprintf("%s  pen: %s", ed.Editor.State(), PenLabel(ed.Editor.Pen())), cfg.UI.HUDTextColor},
	}
	if ed.HoverHit {
		lines = append(lines, hudLine{fmt.Sprintf("tile: (%d, %d)", ed.Hover.X, ed.Hover.Y), cfg.UI.HUDTextColor})
	} else {
		lines = append(lines, hudLine{"tile: -", cfg.UI.HUDTextColor})
	}

	switch ed.LastAction.Kind {
	case editor.ActionPaint:
		c := ed.LastAction.Coord
		lines = append(lines, hudLine{fmt.Sprintf("painted (%d, %d)", c.X, c.Y), cfg.UI.HUDTextColor})
	case editor.ActionSpawn:
		c := ed.LastAction.Coord
		lines = append(lines, hudLine{fmt.Sprintf("spawned %s at (%d, %d)", ed.LastAction.Object, c.X, c.Y), cfg.UI.HUDTextColor})
	}
	if ed.LastError != "" {
		lines = append(lines, hudLine{ed.LastError, cfg.Yellow})
	}
	return lines
}

func drawHUDText(screen *ebiten.Image, s string, c color.Color, x, y float64) {
	face := getHUDFace()

	// 1px shadow
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(cfg.UI.HUDShadow)
	text.Draw(screen, s, face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
