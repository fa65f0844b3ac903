package components

import (
	"github.com/automoto/shmup/combat"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData stores the end-of-match overlay state
type BannerData struct {
	Shown  bool
	Status combat.Status
	Fade   *gween.Tween
	Alpha  float32
	Frames int  // frames since the banner appeared
	Saved  bool // records were written for this match
}

var Banner = donburi.NewComponentType[BannerData]()
