package config

import (
	"image/color"

	"github.com/automoto/tilegarden/tilemap"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// CameraConfig contains camera behaviour
type CameraConfig struct {
	PixelsPerUnit   float64 // screen pixels per world unit
	FollowSmoothing float64 // How fast camera follows the player (0.0-1.0)
	PanSpeed        float64 // world units per frame when panning freely
	HeightScale     float64 // screen pixels per unit of entity height
}

// PlayerConfig contains player movement values
type PlayerConfig struct {
	Speed        float64 // world units per frame
	Acceleration float64
	Friction     float64
	Height       float64 // world units above the ground plane
	Size         float64 // sprite size in world units
}

// ButterflyConfig contains the wander behaviour
type ButterflyConfig struct {
	ChangeChance float64 // per frame chance to pick a new velocity
	WanderSpread float64 // velocity range per axis, centred on zero
	Height       float64
	Size         float64
	BobAmplitude float64 // world units
	BobDuration  float32 // seconds for one half of the bob
}

// SpaceConfig sizes the resolv collision space. The space covers the ground
// plane with its origin at the plane's top-left corner.
type SpaceConfig struct {
	Scale    float64 // space units per world unit
	CellSize int
}

// EditorConfig contains editor overlay layout
type EditorConfig struct {
	IconSize        int
	DialogPadding   int
	AtlasScale      float64 // on-screen pixels per atlas pixel in the tile dialog
	RevealDuration  float32 // seconds for the tile picker to slide in
	PreviewAlpha    float32
	StartTileSet    string
	StartTileIndex  int
	PaintHoldRepeat bool // keep painting while the button is held
}

// UIConfig contains HUD and debug drawing values
type UIConfig struct {
	HUDFontSize   float64
	HUDTextColor  color.RGBA
	HUDShadow     color.RGBA
	HUDMargin     float64
	GroundColor   color.RGBA
	ColliderColor color.RGBA
	CursorColor   color.RGBA
	PanelColor    color.RGBA
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	TextColor     color.RGBA
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowColliders bool // outline resolv objects
	EditorOnStart bool // open the editor on launch
}

// Global configuration instances
var C *Config
var Map tilemap.Config
var Camera CameraConfig
var Player PlayerConfig
var Butterfly ButterflyConfig
var Space SpaceConfig
var Editor EditorConfig
var UI UIConfig
var Debug DebugConfig

// SeedLevel is the embedded TMX loaded on start.
var SeedLevel = "levels/garden.tmx"

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Map = tilemap.DefaultConfig()

	Camera = CameraConfig{
		PixelsPerUnit:   32,
		FollowSmoothing: 0.1,
		PanSpeed:        0.15,
		HeightScale:     8,
	}

	Player = PlayerConfig{
		Speed:        0.05,
		Acceleration: 0.05,
		Friction:     0.05,
		Height:       1,
		Size:         0.5,
	}

	Butterfly = ButterflyConfig{
		ChangeChance: 0.025,
		WanderSpread: 0.1,
		Height:       1,
		Size:         0.5,
		BobAmplitude: 0.1,
		BobDuration:  0.6,
	}

	Space = SpaceConfig{
		Scale:    32,
		CellSize: 32,
	}

	Editor = EditorConfig{
		IconSize:        24,
		DialogPadding:   6,
		AtlasScale:      2,
		RevealDuration:  0.2,
		PreviewAlpha:    0.5,
		StartTileSet:    tilemap.DefaultTile.TileSet,
		StartTileIndex:  tilemap.DefaultTile.Index,
		PaintHoldRepeat: true,
	}

	UI = UIConfig{
		HUDFontSize:   10,
		HUDTextColor:  White,
		HUDShadow:     BlackOverlay,
		HUDMargin:     6,
		GroundColor:   color.RGBA{R: 24, G: 40, B: 24, A: 255},
		ColliderColor: Magenta,
		CursorColor:   Yellow,
		PanelColor:    color.RGBA{R: 20, G: 20, B: 30, A: 230},
		ButtonIdle:    color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:   color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed: color.RGBA{R: 40, G: 40, B: 60, A: 255},
		TextColor:     White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowColliders: false,
		EditorOnStart: false,
	}
}

