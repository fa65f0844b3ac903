package combat

import (
	"image/color"

	"github.com/automoto/shmup/shared/gamemath"
)

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer is the presentation boundary. The simulation calls it once per
// active object per frame, after all updates.
type Renderer interface {
	Circle(center gamemath.Vec, radius float64, clr color.Color)
	Text(s string, at gamemath.Vec, clr color.Color)
}

var (
	ColorHealthy  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorWounded  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	ColorCritical = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	ColorFriendlyShot = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorEnemyShot    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorPlayerRing   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	ColorPlayerCore   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorLabel        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

var healthColors = [...]color.RGBA{ColorHealthy, ColorWounded, ColorCritical}
