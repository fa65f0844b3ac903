package combat

import (
	"math"

	"github.com/automoto/shmup/shared/gamemath"
)

// BossPhase is one of the boss's two attack patterns.
type BossPhase int

const (
	PhaseA BossPhase = iota
	PhaseB
)

func (p BossPhase) String() string {
	if p == PhaseB {
		return "B"
	}
	return "A"
}

// bossState holds the phase machine. Each phase owns its shot timer; a flip
// only resets the flip cooldown.
type bossState struct {
	phase        BossPhase
	timeAlive    float64
	flipCooldown float64
	timerA       float64
	timerB       float64
	shotsA       int
	flips        int
}

// Phase returns the current boss phase. ok is false for non-boss enemies.
func (e *Enemy) Phase() (phase BossPhase, ok bool) {
	if e.boss == nil {
		return PhaseA, false
	}
	return e.boss.phase, true
}

// Flips returns how many times the boss has switched phase.
func (e *Enemy) Flips() int {
	if e.boss == nil {
		return 0
	}
	return e.boss.flips
}

func (e *Enemy) updateBoss(f *Frame) {
	b := e.boss
	cfg := &f.Config.Boss
	b.timeAlive += f.DT
	b.flipCooldown -= f.DT

	e.GameObject.Update(f.DT)
	e.Position = gamemath.EaseToward(e.Position, e.phaseTarget(f), cfg.EaseRate, f.DT)
	e.Position = f.Arena.Clamp(e.Position, e.Size)

	if b.phase == PhaseA {
		e.shootPhaseA(f)
	} else {
		e.shootPhaseB(f)
	}

	if f.Rand.Float64() < cfg.PhaseFlipChance && b.flipCooldown <= 0 {
		if b.phase == PhaseA {
			b.phase = PhaseB
		} else {
			b.phase = PhaseA
		}
		b.flipCooldown = cfg.PhaseCooldown
		b.flips++
		f.Log.Debug("boss phase flipped", "phase", b.phase.String(), "time_alive", b.timeAlive)
	}
}

// phaseTarget is where the current phase wants the boss to be.
func (e *Enemy) phaseTarget(f *Frame) gamemath.Vec {
	cfg := &f.Config.Boss
	t := e.boss.timeAlive
	center := f.Arena.Center()
	if e.boss.phase == PhaseA {
		angle := cfg.OrbitAngularSpeed * t
		return gamemath.V(
			center.X+cfg.OrbitRadius*math.Cos(angle),
			center.Y+cfg.OrbitRadius*math.Sin(angle)-cfg.OrbitOffsetY,
		)
	}
	return gamemath.V(center.X+cfg.SweepAmplitude*math.Cos(cfg.SweepAngularSpeed*t), e.Position.Y)
}

// shootPhaseA emits a homing ring that grows by one shot per volley up to the cap.
func (e *Enemy) shootPhaseA(f *Frame) {
	b := e.boss
	cfg := &f.Config.Boss
	b.timerA -= f.DT
	if b.timerA > 0 {
		return
	}
	if f.Player.Active() {
		for _, point := range gamemath.PointsAroundCircle(e.Position, e.Size, min(b.shotsA, cfg.RingCap)) {
			f.Spawn(NewHoming(point, f.Player, HomingOptions{
				Size:        f.Config.Projectile.HomingSize,
				Speed:       e.Stats.ProjectileSpeed,
				Damage:      e.Stats.ProjectileDamage,
				Lifetime:    cfg.ShotLifetimeA,
				Burst:       QuarterBurst,
				BlinkWindow: f.Config.Projectile.BlinkWindow,
				BlinkRate:   f.Config.Projectile.BlinkRate,
			}))
		}
	}
	b.timerA = cfg.IntervalA
	b.shotsA = min(b.shotsA+1, cfg.RingCap)
}

// shootPhaseB emits a wide ring of fast shots aimed at the player's position.
func (e *Enemy) shootPhaseB(f *Frame) {
	b := e.boss
	cfg := &f.Config.Boss
	b.timerB -= f.DT
	if b.timerB > 0 {
		return
	}
	if f.Player.Active() {
		aim := f.Player.Position
		speed := e.Stats.ProjectileSpeed * cfg.SpeedScaleB
		for _, point := range gamemath.PointsAroundCircle(e.Position, e.Size+cfg.RingPaddingB, cfg.RingCountB) {
			f.Spawn(NewPointSeeking(point, aim, f.Config.Projectile.Size, speed, e.Stats.ProjectileDamage, false))
		}
	}
	b.timerB = cfg.IntervalB * (1 + f.Rand.Float64())
}

// nova is the boss's death burst: a homing ring with random fuses.
func (e *Enemy) nova(f *Frame) {
	cfg := &f.Config.Boss
	for _, point := range gamemath.PointsAroundCircle(e.Position, e.Size, cfg.NovaCount) {
		f.Spawn(NewHoming(point, f.Player, HomingOptions{
			Size:        f.Config.Projectile.HomingSize,
			Speed:       e.Stats.ProjectileSpeed,
			Damage:      e.Stats.ProjectileDamage,
			Lifetime:    f.Rand.Float64() * cfg.NovaMaxFuse,
			Burst:       HalfBurst(cfg.NovaChildren),
			BlinkWindow: f.Config.Projectile.BlinkWindow,
			BlinkRate:   f.Config.Projectile.BlinkRate,
		}))
	}
	f.Log.Info("boss destroyed", "x", e.Position.X, "y", e.Position.Y, "nova", cfg.NovaCount)
}
