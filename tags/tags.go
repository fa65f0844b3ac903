package tags

import "github.com/yohamta/donburi"

var (
	Arena = donburi.NewTag().SetName("Arena")
	HUD   = donburi.NewTag().SetName("HUD")
)
