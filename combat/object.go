package combat

import "github.com/automoto/shmup/shared/gamemath"

// impulseThreshold is the impulse length below which ForcePush contributions
// stop moving an object.
const impulseThreshold = 0.1

// Collider is anything with a circular collision footprint.
type Collider interface {
	Pos() gamemath.Vec
	Radius() float64
}

// Target is a non-owning reference to something a projectile can chase.
// Holders must check Active before every use.
type Target interface {
	Pos() gamemath.Vec
	Active() bool
}

// GameObject is the positioned, collidable base of players, enemies and
// projectiles. Inactive objects are skipped by every pass and purged by the
// simulation at the start of the next frame.
type GameObject struct {
	Position gamemath.Vec
	Size     float64
	impulse  gamemath.Vec
	inactive bool
}

func NewGameObject(pos gamemath.Vec, size float64) GameObject {
	return GameObject{Position: pos, Size: size}
}

func (o *GameObject) Pos() gamemath.Vec { return o.Position }

func (o *GameObject) Radius() float64 { return o.Size }

func (o *GameObject) Active() bool { return !o.inactive }

// Impulse returns the remaining knock-back velocity.
func (o *GameObject) Impulse() gamemath.Vec { return o.impulse }

// Update applies and decays the knock-back impulse.
func (o *GameObject) Update(dt float64) {
	if o.impulse.Len() <= impulseThreshold {
		return
	}
	o.Position = o.Position.Add(o.impulse.Scale(dt))
	o.impulse = gamemath.Decay(o.impulse, 1, dt)
}

// IsColliding reports circle overlap: squared center distance within the
// squared sum of radii.
func (o *GameObject) IsColliding(other Collider) bool {
	r := o.Size + other.Radius()
	return o.Position.DistSq(other.Pos()) <= r*r
}

// ForcePush adds v to the knock-back impulse.
func (o *GameObject) ForcePush(v gamemath.Vec) {
	o.impulse = o.impulse.Add(v)
}

// MarkForRemoval deactivates the object. Calling it again is a no-op.
func (o *GameObject) MarkForRemoval() {
	o.inactive = true
}
