package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the preferences saved between runs.
type SettingsData struct {
	SFXVolume     float64
	ShowColliders bool
	Dirty         bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
