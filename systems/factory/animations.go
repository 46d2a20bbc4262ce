package factory

import (
	"fmt"
	"image"

	"github.com/automoto/tilegarden/assets"
	"github.com/automoto/tilegarden/assets/animations"
	"github.com/automoto/tilegarden/components"
	cfg "github.com/automoto/tilegarden/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations creates an AnimationData component based on the sprite key
// (e.g., "player", "butterfly") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CachedFrames: make(map[cfg.StateID]map[int]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
	}

	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)

		// Pre-calculate frames
		frames := make(map[int]*ebiten.Image)
		step := def.Step
		if step <= 0 {
			step = 1
		}
		for sheetIndex := def.First; sheetIndex <= def.Last; sheetIndex += step {
			sx := sheetIndex * frameWidth
			srcRect := image.Rect(sx, 0, sx+frameWidth, frameHeight)
			frames[sheetIndex] = assets.GetFrame(key, state, sheetIndex, srcRect)
		}
		animData.CachedFrames[state] = frames
	}

	return animData
}
