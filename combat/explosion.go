package combat

import "github.com/automoto/shmup/shared/gamemath"

// Explosion is the fan-out a homing shot leaves behind when it expires: a
// ring of point-seeking children flying outward, each carrying
// parent.Damage / DamageDivisor.
type Explosion struct {
	Children      int
	DamageDivisor int
}

// QuarterBurst is the default homing explosion.
var QuarterBurst = Explosion{Children: 8, DamageDivisor: 4}

// HalfBurst returns a half-damage explosion with n children.
func HalfBurst(n int) Explosion {
	return Explosion{Children: n, DamageDivisor: 2}
}

// ChildDamage returns the damage each child inherits from parent.
func (e Explosion) ChildDamage(parent int) int {
	if e.DamageDivisor <= 0 {
		return parent
	}
	return parent / e.DamageDivisor
}

// Detonate queues the children of p through the frame's spawn queue.
func (e Explosion) Detonate(p *Projectile, f *Frame) {
	if e.Children <= 0 {
		return
	}
	center := p.Position
	radius := f.Config.Projectile.ChildRadius
	damage := e.ChildDamage(p.Damage)
	for _, point := range gamemath.PointsAroundCircle(center, radius, e.Children) {
		// aim past the spawn point so every child flies radially outward
		aim := point.Add(point.Sub(center))
		f.Spawn(NewPointSeeking(point, aim, f.Config.Projectile.Size, p.Speed, damage, p.FiredByPlayer))
	}
	f.Log.Debug("projectile exploded",
		"kind", p.Kind.String(),
		"x", center.X, "y", center.Y,
		"children", e.Children,
		"damage", damage)
}
