// Package autopilot flies the player ship from the live simulation state.
// The headless runner and the battle scene's demo mode both use it.
package autopilot

import (
	"math"

	"github.com/automoto/shmup/combat"
	cfg "github.com/automoto/shmup/config"
	"github.com/automoto/shmup/shared/gamemath"
)

// alignSlack is how far off an enemy's column the pilot tolerates before strafing.
const alignSlack = 8.0

// Pilot produces one combat.Input per step. It reads the simulation but
// never mutates it, and uses no randomness, so runs stay reproducible.
type Pilot struct {
	skill    cfg.AutopilotSkillConfig
	elapsed  float64
	altTimer float64
}

func New(skill cfg.AutopilotSkillConfig) *Pilot {
	return &Pilot{skill: skill}
}

// Next decides the input for the coming step.
func (p *Pilot) Next(sim *combat.Simulation, dt float64) combat.Input {
	p.elapsed += dt
	if p.altTimer > 0 {
		p.altTimer -= dt
	}

	player := sim.Player()
	if !player.Active() {
		return combat.Input{}
	}
	pos := player.Position
	in := combat.Input{Fire: true}

	enemies := activeEnemyPositions(sim.Enemies())
	if len(enemies) > 0 && p.altTimer <= 0 {
		in.AltFire = true
		p.altTimer = p.skill.AltFireInterval
	}

	if shot := nearestThreat(pos, sim.EnemyProjectiles(), p.skill.DodgeRadius); shot != nil {
		in.Move = dodge(pos, shot)
		return in
	}

	if i := gamemath.Nearest(pos, enemies); i >= 0 {
		in.Move = p.engage(pos, enemies[i])
		return in
	}

	in.Move = p.strafe(pos, sim.Arena())
	return in
}

// dodge sidesteps across the shot's heading, leaning away from it.
func dodge(pos gamemath.Vec, shot *combat.Projectile) gamemath.Vec {
	away := shot.Position.DirTo(pos)
	side := shot.Velocity.Perp().Normalize()
	if side.IsZero() {
		return away
	}
	if side.Dot(away) < 0 {
		side = side.Neg()
	}
	return side.Add(away)
}

// engage lines up under the enemy and backs off when it gets too close.
func (p *Pilot) engage(pos, enemy gamemath.Vec) gamemath.Vec {
	var move gamemath.Vec
	if dx := enemy.X - pos.X; math.Abs(dx) > alignSlack {
		move.X = math.Copysign(1, dx)
	}
	if pos.Dist(enemy) < p.skill.KeepDistance {
		move.Y = math.Copysign(1, pos.Y-enemy.Y)
	}
	return move
}

// strafe sweeps side to side along the lower part of the arena.
func (p *Pilot) strafe(pos gamemath.Vec, a combat.Arena) gamemath.Vec {
	var move gamemath.Vec
	if p.skill.StrafePeriod > 0 {
		move.X = math.Copysign(1, math.Sin(2*math.Pi*p.elapsed/p.skill.StrafePeriod))
	}
	home := combat.PlayerStart(a)
	if math.Abs(home.Y-pos.Y) > alignSlack {
		move.Y = math.Copysign(1, home.Y-pos.Y)
	}
	return move
}

func activeEnemyPositions(enemies []*combat.Enemy) []gamemath.Vec {
	var out []gamemath.Vec
	for _, e := range enemies {
		if e.Active() {
			out = append(out, e.Position)
		}
	}
	return out
}

// nearestThreat returns the closest active enemy shot within radius that is
// still closing in, or nil.
func nearestThreat(pos gamemath.Vec, shots []*combat.Projectile, radius float64) *combat.Projectile {
	var best *combat.Projectile
	bestDist := radius * radius
	for _, s := range shots {
		if !s.Active() {
			continue
		}
		d := s.Position.DistSq(pos)
		if d > bestDist {
			continue
		}
		if s.Velocity.Dot(pos.Sub(s.Position)) <= 0 {
			continue
		}
		best, bestDist = s, d
	}
	return best
}
