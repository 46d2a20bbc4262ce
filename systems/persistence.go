package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/tilegarden/editor"
	"github.com/automoto/tilegarden/tilemap"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the preferences stored on disk. Map data is never
// saved.
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	ShowColliders bool    `json:"showColliders"`
}

// SavedPen is the editor pen restored on the next run.
type SavedPen struct {
	Mode    int    `json:"mode"`
	TileSet string `json:"tileSet"`
	Index   int    `json:"index"`
	Object  string `json:"object"`
}

const (
	settingsItem = "settings"
	penItem      = "pen"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tilegarden",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		// Nothing saved yet, use defaults
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved or the store is unavailable.
func LoadSettings() *SavedSettings {
	var s SavedSettings
	if !loadItem(settingsItem, &s) {
		return nil
	}
	return &s
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsItem, s)
}

// SavePen remembers the editor pen.
func SavePen(p editor.Pen) {
	_ = saveItem(penItem, PenToSaved(p))
}

// LoadPen returns the pen saved by a previous run.
func LoadPen() (editor.Pen, bool) {
	var s SavedPen
	if !loadItem(penItem, &s) {
		return editor.Pen{}, false
	}
	return PenFromSaved(s)
}

func PenToSaved(p editor.Pen) SavedPen {
	s := SavedPen{Mode: int(p.Mode)}
	switch p.Mode {
	case editor.PenTile:
		s.TileSet = p.Tile.TileSet
		s.Index = p.Tile.Index
	case editor.PenObject:
		s.Object = p.Object.String()
	}
	return s
}

// PenFromSaved converts a stored pen back. Unknown object kinds and modes are
// rejected; the editor validates the tile itself.
func PenFromSaved(s SavedPen) (editor.Pen, bool) {
	switch editor.PenMode(s.Mode) {
	case editor.PenTile:
		return editor.Pen{
			Mode: editor.PenTile,
			Tile: tilemap.Tile{TileSet: s.TileSet, Index: s.Index},
		}, true
	case editor.PenObject:
		kind, ok := editor.ParseObjectKind(s.Object)
		if !ok {
			return editor.Pen{}, false
		}
		return editor.Pen{Mode: editor.PenObject, Object: kind}, true
	case editor.PenNone:
		return editor.Pen{}, true
	}
	return editor.Pen{}, false
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = clamp(saved.SFXVolume, 0, 1)
	globalShowColliders = saved.ShowColliders
}
