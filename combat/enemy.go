package combat

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/shmup/shared/gamemath"
)

// Kind tags the closed set of enemy behaviors.
type Kind int

const (
	// Simple enemies wander and fire point-seeking shots at the player.
	Simple Kind = iota
	// Tracing enemies wander and fire homing shots at the player.
	Tracing
	// Boss enemies run the two-phase pattern machine instead of wandering.
	Boss
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Tracing:
		return "tracing"
	case Boss:
		return "boss"
	}
	return "unknown"
}

// Enemy is a hostile entity. Behavior and Stats are shared with every other
// enemy of the same archetype and must not be modified.
type Enemy struct {
	Entity
	Kind     Kind
	Behavior *BehaviorModel
	Stats    *StatModel
	Speed    float64
	Goal     gamemath.Vec

	boss *bossState
	dead bool
}

// NewEnemy builds an enemy at pos with full health and base speed.
func NewEnemy(kind Kind, pos gamemath.Vec, behavior *BehaviorModel, stats *StatModel) *Enemy {
	e := &Enemy{
		Entity: Entity{
			GameObject: NewGameObject(pos, stats.Size),
			Health:     stats.MaxHealth,
			MaxHealth:  stats.MaxHealth,
			SlamDamage: stats.SlamDamage,
		},
		Kind:     kind,
		Behavior: behavior,
		Stats:    stats,
		Speed:    stats.BaseSpeed,
	}
	if kind == Boss {
		e.boss = &bossState{phase: PhaseA}
	}
	return e
}

// Update runs one frame of AI. A dead enemy is killed instead.
func (e *Enemy) Update(f *Frame) {
	if !e.Active() {
		return
	}
	if !e.Alive() {
		e.Kill(f)
		return
	}
	if e.boss != nil {
		e.updateBoss(f)
		return
	}

	e.GameObject.Update(f.DT)
	e.wander(f)
	e.Position = f.Arena.Clamp(e.Position, e.Size)
	e.fire(f)
}

// Kill runs the enemy's death effect once and deactivates it.
func (e *Enemy) Kill(f *Frame) {
	if e.dead {
		return
	}
	e.dead = true
	if e.boss != nil {
		e.nova(f)
	}
	e.MarkForRemoval()
}

// wander picks a new goal when needed, jitters speed and steps toward the goal.
func (e *Enemy) wander(f *Frame) {
	b := e.Behavior
	if e.Goal.IsZero() || f.Rand.Float64() < b.MovementGoalChange {
		point := f.Arena.RandomPoint(f.Rand)
		toCenter := point.DirTo(f.Arena.Center())
		toPlayer := point.DirTo(f.Player.Position)
		bias := toCenter.Scale(b.CenterBias).Add(toPlayer.Scale(b.PlayerBias))
		e.Goal = point.Add(bias)
	}

	if f.Rand.Float64() < b.SpeedChange {
		e.Speed += (f.Rand.Float64() - e.HealthRatio()) * f.Config.Enemy.SpeedJitter
	}
	e.Speed = gamemath.Clamp(e.Speed, e.Stats.MinSpeed, e.Stats.MaxSpeed)

	vel := e.Position.DirTo(e.Goal).Scale(e.Speed)
	e.Position = e.Position.Add(vel.Scale(f.DT))
}

// fire rolls the shoot chance and fires the kind's shot at the player.
func (e *Enemy) fire(f *Frame) {
	if f.Rand.Float64() >= e.Behavior.ShootChance {
		return
	}
	if !f.Player.Active() {
		return
	}
	switch e.Kind {
	case Simple:
		f.Spawn(NewPointSeeking(e.Position, f.Player.Position,
			f.Config.Projectile.Size, e.Stats.ProjectileSpeed, e.Stats.ProjectileDamage, false))
	case Tracing:
		f.Spawn(NewHoming(e.Position, f.Player, HomingOptions{
			Size:        f.Config.Projectile.HomingSize,
			Speed:       e.Stats.ProjectileSpeed,
			Damage:      e.Stats.ProjectileDamage,
			Lifetime:    f.Config.Enemy.HomingLifetime,
			Burst:       QuarterBurst,
			BlinkWindow: f.Config.Projectile.BlinkWindow,
			BlinkRate:   f.Config.Projectile.BlinkRate,
		}))
	}
}

// HealthColor maps remaining health onto healthy, wounded and critical.
func (e *Enemy) HealthColor() color.RGBA {
	idx := int((1 - e.HealthRatio()) * float64(len(healthColors)))
	return healthColors[gamemath.ClampInt(idx, 0, len(healthColors)-1)]
}

func (e *Enemy) Draw(r Renderer) {
	r.Circle(e.Position, e.Size, e.HealthColor())
	r.Text(strconv.Itoa(e.Health), e.Position, ColorLabel)
	if e.boss != nil {
		r.Text(e.boss.phase.String(), e.Position.Sub(gamemath.V(0, 20)), ColorLabel)
	}
}

// String renders the full enemy state as a deterministic pipe-separated line.
func (e *Enemy) String() string {
	b, s := e.Behavior, e.Stats
	return strings.Join([]string{
		"Enemy",
		"kind=" + e.Kind.String(),
		fmt.Sprintf("pos=%.2f,%.2f", e.Position.X, e.Position.Y),
		fmt.Sprintf("size=%.2f", e.Size),
		fmt.Sprintf("health=%d/%d", e.Health, e.MaxHealth),
		fmt.Sprintf("slam=%d", e.SlamDamage),
		fmt.Sprintf("speed=%.2f", e.Speed),
		fmt.Sprintf("goal=%.2f,%.2f", e.Goal.X, e.Goal.Y),
		fmt.Sprintf("behavior=goalChange:%.4f,speedChange:%.4f,shootChance:%.4f,playerBias:%.4f,centerBias:%.4f",
			b.MovementGoalChange, b.SpeedChange, b.ShootChance, b.PlayerBias, b.CenterBias),
		fmt.Sprintf("stats=baseSpeed:%.2f,min:%.2f,max:%.2f,projSpeed:%.2f,projDamage:%d,size:%.2f,maxHealth:%d,slam:%d",
			s.BaseSpeed, s.MinSpeed, s.MaxSpeed, s.ProjectileSpeed, s.ProjectileDamage, s.Size, s.MaxHealth, s.SlamDamage),
	}, "|")
}
