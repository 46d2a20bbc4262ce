package systems

import (
	"github.com/automoto/tilegarden/archetypes"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/yohamta/donburi/ecs"
)

// globalShowColliders carries the saved overlay flag into the first scene.
var globalShowColliders = cfg.Debug.ShowColliders

// GetOrCreateSettings returns the settings singleton, seeding it from the
// values loaded at startup.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume:     globalSFXVolume,
			ShowColliders: globalShowColliders,
		})
		components.Audio.SetValue(entry, components.AudioData{SFXVolume: globalSFXVolume})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay toggle and the volume keys and
// writes changed settings back to disk.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleColliders).JustPressed {
		settings.ShowColliders = !settings.ShowColliders
		globalShowColliders = settings.ShowColliders
		settings.Dirty = true
	}

	step := 0.0
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		step -= cfg.Audio.VolumeStep
	}
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		step += cfg.Audio.VolumeStep
	}
	if step != 0 {
		SetSFXVolume(e, settings.SFXVolume+step)
		if globalSFXVolume != settings.SFXVolume {
			settings.SFXVolume = globalSFXVolume
			settings.Dirty = true
			QueueSound(e, cfg.SoundSelect)
		}
	}

	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	_ = SaveSettings(&SavedSettings{
		SFXVolume:     settings.SFXVolume,
		ShowColliders: settings.ShowColliders,
	})
}

// SetShowCollidersGlobal overrides the overlay flag before the scene starts.
func SetShowCollidersGlobal(show bool) {
	globalShowColliders = show
}
