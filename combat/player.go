package combat

import (
	"fmt"

	"github.com/automoto/shmup/shared/gamemath"
)

// Input is one frame of player intent. Move is a per-axis direction in
// [-1, 1]; it is normalized before use.
type Input struct {
	Move    gamemath.Vec
	Fire    bool
	AltFire bool
}

// Player is the controllable ship.
type Player struct {
	Entity
	Velocity gamemath.Vec

	cfg          PlayerConfig
	immunity     float64
	hitThisFrame bool
	fireCooldown float64
	altCooldown  float64
}

// NewPlayer creates a player at pos with full health.
func NewPlayer(pos gamemath.Vec, cfg PlayerConfig) *Player {
	return &Player{
		Entity: Entity{
			GameObject: NewGameObject(pos, cfg.Size),
			Health:     cfg.MaxHealth,
			MaxHealth:  cfg.MaxHealth,
		},
		cfg: cfg,
	}
}

// TakeDamage applies damage unless the immunity window is open. Every hit
// landing in the same frame counts; the window opens on the next Update.
func (p *Player) TakeDamage(amount int) {
	if p.Immune() {
		return
	}
	p.Entity.TakeDamage(amount)
	p.hitThisFrame = true
}

// Immune reports whether incoming damage is currently ignored.
func (p *Player) Immune() bool {
	return p.immunity > 0
}

// ApplyInput turns intent into acceleration and fire requests. A dead
// player ignores input.
func (p *Player) ApplyInput(in Input, f *Frame) {
	if !p.Active() || !p.Alive() {
		return
	}
	if !in.Move.IsZero() {
		p.Velocity = p.Velocity.Add(in.Move.Normalize().Scale(p.cfg.Acceleration * f.DT))
	}
	if in.Fire {
		p.shoot(f)
	}
	if in.AltFire {
		p.altShoot(f)
	}
}

func (p *Player) shoot(f *Frame) {
	if p.fireCooldown > 0 {
		return
	}
	f.Spawn(NewStraight(p.Position, f.Config.Projectile.Size, -p.cfg.ShotSpeed, true, p.cfg.ShotDamage, true))
	f.fired()
	p.fireCooldown = p.cfg.FireCooldown
}

// altShoot fires a multi-target homing shot. With nothing to chase the
// trigger is ignored and the cooldown is kept.
func (p *Player) altShoot(f *Frame) {
	if p.altCooldown > 0 || f.Targets == nil {
		return
	}
	shot := NewMultiTargetHoming(p.Position, f.Targets, HomingOptions{
		Size:        f.Config.Projectile.HomingSize,
		Speed:       p.cfg.AltShotSpeed,
		Damage:      p.cfg.AltShotDamage,
		ByPlayer:    true,
		Lifetime:    p.cfg.AltShotLifetime,
		Burst:       HalfBurst(p.cfg.AltShotChildren),
		BlinkWindow: f.Config.Projectile.BlinkWindow,
		BlinkRate:   f.Config.Projectile.BlinkRate,
	})
	if shot.Target() == nil {
		return
	}
	f.Spawn(shot)
	f.fired()
	p.altCooldown = p.cfg.AltFireCooldown
}

// Update integrates velocity, keeps the player on the field and runs timers.
func (p *Player) Update(f *Frame) {
	if !p.Active() {
		return
	}
	dt := f.DT
	p.GameObject.Update(dt)

	p.Velocity = gamemath.SnapToZero(p.Velocity, impulseThreshold)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity = gamemath.Decay(p.Velocity, p.cfg.Damping, dt)
	p.Position = f.Arena.Clamp(p.Position, p.Size)

	if p.hitThisFrame {
		p.immunity = p.cfg.Immunity
		p.hitThisFrame = false
	} else if p.immunity > 0 {
		p.immunity -= dt
	}
	if p.fireCooldown > 0 {
		p.fireCooldown -= dt
	}
	if p.altCooldown > 0 {
		p.altCooldown -= dt
	}
}

func (p *Player) Draw(r Renderer) {
	r.Circle(p.Position, p.Size*2, ColorPlayerRing)
	r.Circle(p.Position, p.Size, ColorPlayerCore)
}

func (p *Player) String() string {
	return fmt.Sprintf("Player|health=%d/%d|pos=%.2f,%.2f|vel=%.2f,%.2f|size=%.2f",
		p.Health, p.MaxHealth, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.Size)
}
