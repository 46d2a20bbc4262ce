package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionPaint
	ActionEyedropper
	ActionEditorToggle
	ActionTileDialog
	ActionObjectDialog
	ActionCloseDialog
	ActionToggleColliders
	ActionVolumeDown
	ActionVolumeUp
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, mouse buttons and pad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			// Camera pan, only while the editor is open
			ActionPanLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionPanRight: {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionPanUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionPanDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionPaint: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionEyedropper: {
				Keys:         []ebiten.Key{ebiten.KeyQ},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
			},
			ActionEditorToggle: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// Select / Back button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionTileDialog:      {Keys: []ebiten.Key{ebiten.KeyT}},
			ActionObjectDialog:    {Keys: []ebiten.Key{ebiten.KeyO}},
			ActionCloseDialog:     {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionToggleColliders: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionVolumeDown:      {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
			ActionVolumeUp:        {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
		},
	}
}
