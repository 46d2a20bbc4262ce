package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed int // ticks per frame
}

// CharacterAnimations maps a sprite key (e.g., "butterfly") to its
// animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle: {First: 0, Last: 0, Step: 1, Speed: 0},
	},
	// Two frames at 250ms
	"butterfly": {
		Flap: {First: 0, Last: 1, Step: 1, Speed: 15},
	},
}
