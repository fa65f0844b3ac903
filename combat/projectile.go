package combat

import (
	"iter"
	"math"

	"github.com/automoto/shmup/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProjectileKind tags the closed set of projectile behaviors.
type ProjectileKind int

const (
	Straight ProjectileKind = iota
	PointSeeking
	Homing
	MultiTargetHoming
)

func (k ProjectileKind) String() string {
	switch k {
	case Straight:
		return "straight"
	case PointSeeking:
		return "point-seeking"
	case Homing:
		return "homing"
	case MultiTargetHoming:
		return "multi-target-homing"
	}
	return "unknown"
}

// motion advances a projectile by one frame and reports whether it expired.
type motion interface {
	advance(p *Projectile, f *Frame) (expired bool)
}

// Projectile is a damaging shot. FiredByPlayer picks both its pool and the
// side it can hurt.
type Projectile struct {
	GameObject
	Kind          ProjectileKind
	Speed         float64
	Damage        int
	FiredByPlayer bool
	Velocity      gamemath.Vec

	motion motion
}

// NewStraight creates a shot moving at constant velocity along one axis.
// A negative speed flies up or left.
func NewStraight(pos gamemath.Vec, size, speed float64, vertical bool, damage int, byPlayer bool) *Projectile {
	vel := gamemath.V(speed, 0)
	if vertical {
		vel = gamemath.V(0, speed)
	}
	return &Projectile{
		GameObject:    NewGameObject(pos, size),
		Kind:          Straight,
		Speed:         math.Abs(speed),
		Damage:        damage,
		FiredByPlayer: byPlayer,
		Velocity:      vel,
		motion:        linear{},
	}
}

// NewPointSeeking creates a shot whose velocity is fixed at spawn toward
// point. It never retargets.
func NewPointSeeking(pos, point gamemath.Vec, size, speed float64, damage int, byPlayer bool) *Projectile {
	return &Projectile{
		GameObject:    NewGameObject(pos, size),
		Kind:          PointSeeking,
		Speed:         speed,
		Damage:        damage,
		FiredByPlayer: byPlayer,
		Velocity:      gamemath.HomingVelocity(pos, point, speed),
		motion:        linear{},
	}
}

// HomingOptions configures a homing shot.
type HomingOptions struct {
	Size     float64
	Speed    float64
	Damage   int
	ByPlayer bool
	Lifetime float64
	Burst    Explosion
	// BlinkWindow and BlinkRate drive the cosmetic final-seconds blink.
	BlinkWindow float64
	BlinkRate   float64
}

// NewHoming creates a shot that steers at target every frame and explodes
// when its lifetime runs out, its target goes away, or it leaves the arena.
func NewHoming(pos gamemath.Vec, target Target, o HomingOptions) *Projectile {
	return &Projectile{
		GameObject:    NewGameObject(pos, o.Size),
		Kind:          Homing,
		Speed:         o.Speed,
		Damage:        o.Damage,
		FiredByPlayer: o.ByPlayer,
		motion:        newSeeker(target, o),
	}
}

// NewMultiTargetHoming is NewHoming that, on losing its target, switches to
// the nearest active candidate and only explodes once none remain. The
// initial target is the nearest active candidate at creation time.
func NewMultiTargetHoming(pos gamemath.Vec, candidates iter.Seq[Target], o HomingOptions) *Projectile {
	m := &multiSeeker{seeker: *newSeeker(nil, o), candidates: candidates}
	m.target = m.nearest(pos)
	return &Projectile{
		GameObject:    NewGameObject(pos, o.Size),
		Kind:          MultiTargetHoming,
		Speed:         o.Speed,
		Damage:        o.Damage,
		FiredByPlayer: o.ByPlayer,
		motion:        m,
	}
}

// Update advances the projectile. On expiry homing kinds explode first, then
// the projectile deactivates.
func (p *Projectile) Update(f *Frame) {
	if !p.Active() {
		return
	}
	p.GameObject.Update(f.DT)
	if !p.motion.advance(p, f) {
		return
	}
	if s := p.seeker(); s != nil {
		s.explode(p, f)
	}
	p.MarkForRemoval()
}

// Target returns the current homing target, or nil for non-homing kinds.
func (p *Projectile) Target() Target {
	if s := p.seeker(); s != nil {
		return s.target
	}
	return nil
}

// Lifetime returns the remaining lifetime of a homing shot. Other kinds
// report +Inf.
func (p *Projectile) Lifetime() float64 {
	if s := p.seeker(); s != nil {
		return s.life
	}
	return math.Inf(1)
}

// Visible reports whether the shot should be drawn this frame.
func (p *Projectile) Visible() bool {
	if s := p.seeker(); s != nil {
		return s.visible()
	}
	return true
}

func (p *Projectile) Draw(r Renderer) {
	if !p.Visible() {
		return
	}
	clr := ColorEnemyShot
	if p.FiredByPlayer {
		clr = ColorFriendlyShot
	}
	r.Circle(p.Position, p.Size, clr)
}

func (p *Projectile) seeker() *seeker {
	switch m := p.motion.(type) {
	case *seeker:
		return m
	case *multiSeeker:
		return &m.seeker
	}
	return nil
}

// linear moves at the fixed spawn velocity until leaving the arena.
type linear struct{}

func (linear) advance(p *Projectile, f *Frame) bool {
	p.Position = p.Position.Add(p.Velocity.Scale(f.DT))
	return !f.Arena.Overlaps(p.Position, p.Size)
}

type seeker struct {
	target   Target
	life     float64
	burst    Explosion
	exploded bool

	blinkWindow float64
	blinkRate   float64
	blink       *gween.Tween
	blinkPhase  float32
}

func newSeeker(target Target, o HomingOptions) *seeker {
	return &seeker{
		target:      target,
		life:        o.Lifetime,
		burst:       o.Burst,
		blinkWindow: o.BlinkWindow,
		blinkRate:   o.BlinkRate,
	}
}

func (s *seeker) advance(p *Projectile, f *Frame) bool {
	return s.steer(p, f, nil)
}

// steer runs the shared homing step. reacquire, when set, replaces a lost
// target; a nil result means nothing is left to chase.
func (s *seeker) steer(p *Projectile, f *Frame, reacquire func(gamemath.Vec) Target) bool {
	s.life -= f.DT
	if s.life <= 0 {
		return true
	}
	if !live(s.target) {
		if reacquire == nil {
			return true
		}
		if s.target = reacquire(p.Position); s.target == nil {
			return true
		}
	}
	p.Velocity = gamemath.HomingVelocity(p.Position, s.target.Pos(), p.Speed)
	p.Position = p.Position.Add(p.Velocity.Scale(f.DT))
	s.tickBlink(f.DT)
	return !f.Arena.Overlaps(p.Position, p.Size)
}

// tickBlink starts the warning tween once the shot enters its final window.
func (s *seeker) tickBlink(dt float64) {
	if s.blinkWindow <= 0 || s.life > s.blinkWindow {
		return
	}
	if s.blink == nil {
		flashes := float32(s.life * s.blinkRate)
		s.blink = gween.New(0, flashes, float32(s.life), ease.InQuad)
	}
	s.blinkPhase, _ = s.blink.Update(float32(dt))
}

func (s *seeker) visible() bool {
	return s.blink == nil || int(s.blinkPhase)%2 == 0
}

func (s *seeker) explode(p *Projectile, f *Frame) {
	if s.exploded {
		return
	}
	s.exploded = true
	s.burst.Detonate(p, f)
}

type multiSeeker struct {
	seeker
	candidates iter.Seq[Target]
}

func (m *multiSeeker) advance(p *Projectile, f *Frame) bool {
	return m.steer(p, f, m.nearest)
}

// nearest returns the closest active candidate to from, or nil.
func (m *multiSeeker) nearest(from gamemath.Vec) Target {
	if m.candidates == nil {
		return nil
	}
	var best Target
	bestDist := math.Inf(1)
	for t := range m.candidates {
		if !live(t) {
			continue
		}
		if d := from.DistSq(t.Pos()); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// live reports whether t is still a valid reference. A typed nil pointer
// stored in the interface counts as gone.
func live(t Target) bool {
	if t == nil {
		return false
	}
	switch v := t.(type) {
	case *Enemy:
		if v == nil {
			return false
		}
	case *Player:
		if v == nil {
			return false
		}
	}
	return t.Active()
}
