package combat

import (
	"math/rand/v2"

	"github.com/automoto/shmup/shared/gamemath"
)

// Arena is the fixed rectangular playfield with its origin at the top-left.
type Arena struct {
	Width  float64
	Height float64
}

func (a Arena) Center() gamemath.Vec {
	return gamemath.V(a.Width/2, a.Height/2)
}

// Clamp keeps a circle of the given size fully inside the arena.
func (a Arena) Clamp(pos gamemath.Vec, size float64) gamemath.Vec {
	return gamemath.V(
		gamemath.Clamp(pos.X, size, a.Width-size),
		gamemath.Clamp(pos.Y, size, a.Height-size),
	)
}

// Overlaps reports whether any part of a circle of the given size is still
// on the playfield. Projectiles expire once this turns false.
func (a Arena) Overlaps(pos gamemath.Vec, size float64) bool {
	return pos.X+size >= 0 && pos.X-size <= a.Width &&
		pos.Y+size >= 0 && pos.Y-size <= a.Height
}

// RandomPoint samples a uniform point in the arena, drawing X before Y.
func (a Arena) RandomPoint(r *rand.Rand) gamemath.Vec {
	x := r.Float64() * a.Width
	y := r.Float64() * a.Height
	return gamemath.V(x, y)
}
