package components

import (
	"github.com/automoto/tilegarden/assets/animations"
	"github.com/automoto/tilegarden/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CachedFrames     map[config.StateID]map[int]*ebiten.Image // Pre-calculated subimages keyed by sheet index
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	anim.Restart()
}

// Frame returns the image of the current frame, or nil without an animation.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.CachedFrames[a.CurrentSheet][a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
