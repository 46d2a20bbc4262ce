package scenes

import (
	"context"
	"image/color"
	"log"
	"sort"
	"sync"

	"github.com/automoto/tilegarden/assets"
	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/automoto/tilegarden/shared/leveldata"
	"github.com/automoto/tilegarden/systems"
	"github.com/automoto/tilegarden/systems/factory"
	"github.com/automoto/tilegarden/tags"
	"github.com/automoto/tilegarden/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// WorldScene is the garden: the tile map, its entities and the editor
// overlay.
type WorldScene struct {
	ecs       *ecs.ECS
	editorUI  *ui.EditorUI
	levelPath string
	once      sync.Once
}

func NewWorldScene(levelPath string) *WorldScene {
	return &WorldScene{levelPath: levelPath}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	// Widgets first so their clicks are known to the editor system
	ws.editorUI.Update()
	ws.ecs.Update()
	ws.editorUI.Sync()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	ws.editorUI.Draw(screen)
}

func (ws *WorldScene) configure() {
	if err := assets.LoadAssets(context.Background()); err != nil {
		panic("failed to load assets: " + err.Error())
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: pen preview shader unavailable: %v", err)
	}
	// Preload to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	level := assets.MustLoadSeedLevel(ws.levelPath)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame order: input, editor, snapshot, movement, collision, sync, camera
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateEditor)
	ecs.AddSystem(systems.UpdateSnapshot)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateButterflies)
	ecs.AddSystem(systems.UpdateTileCollision)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawMap)
	ecs.AddRenderer(cfg.Default, systems.DrawPenPreview)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	systems.GetOrCreateSettings(ws.ecs)
	factory.CreateGroundSpace(ws.ecs)
	factory.CreateGround(ws.ecs)
	factory.CreateTileMap(ws.ecs, level)
	factory.SpawnLevelObjects(ws.ecs, level)

	// Start the camera on the player so it does not sweep in from the origin
	var start math.Vec2
	if player, ok := tags.Player.First(ws.ecs.World); ok {
		start = components.Transform.Get(player).Position
	}
	factory.CreateCamera(ws.ecs, start)

	edEntry := factory.CreateEditor(ws.ecs, editorTileSets(level))
	if pen, ok := systems.LoadPen(); ok {
		components.Editor.Get(edEntry).Editor.SetPen(pen)
	}

	ws.editorUI = ui.NewEditorUI(ws.ecs)
	ws.editorUI.Sync()
}

// editorTileSets lists the level's tile sets followed by any other
// generated set, so every atlas can be browsed.
func editorTileSets(level *leveldata.Level) []string {
	names := level.TileSetNames()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}

	var extra []string
	for id := range placeholders.TileSets {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}
