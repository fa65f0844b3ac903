package systems

import (
	"image/color"

	"github.com/automoto/shmup/combat"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/fonts"
	"github.com/automoto/shmup/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// screenRenderer draws the combat core's primitives onto an ebiten image.
type screenRenderer struct {
	screen *ebiten.Image
	face   font.Face
}

var _ combat.Renderer = (*screenRenderer)(nil)

func (r *screenRenderer) Circle(center gamemath.Vec, radius float64, clr color.Color) {
	vector.FillCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

// Text draws s centered on at.
func (r *screenRenderer) Text(s string, at gamemath.Vec, clr color.Color) {
	bounds := text.BoundString(r.face, s)
	x := int(at.X) - bounds.Dx()/2
	y := int(at.Y) + bounds.Dy()/2
	text.Draw(r.screen, s, r.face, x, y, clr)
}

// DrawArena clears the field and draws every live object.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	arena := GetArena(e)
	if arena == nil || arena.Sim == nil {
		return
	}
	arena.Sim.Draw(&screenRenderer{screen: screen, face: fonts.Label.Get()})
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
