package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Butterfly = donburi.NewTag().SetName("Butterfly")
	Ground    = donburi.NewTag().SetName("Ground")
)

// Resolv tags for the collision space
const (
	ResolvGround    = "ground"
	ResolvPlayer    = "Player"
	ResolvButterfly = "Butterfly"
)
