package combat

import (
	"iter"
	"log/slog"
	"math/rand/v2"
)

// Frame is the per-step context handed to every Update. Objects read the
// shared state through it and request spawns through it; they never touch
// the simulation's pools directly.
type Frame struct {
	DT     float64
	Rand   *rand.Rand
	Arena  Arena
	Player *Player
	Config *Config
	Log    *slog.Logger

	// Targets yields the live enemy pool at the time of the call.
	Targets iter.Seq[Target]

	queue *spawnQueue
	stats *Stats
}

// Spawn queues p. It joins its pool at the start of the next step.
func (f *Frame) Spawn(p *Projectile) {
	f.queue.push(p)
}

// fired counts one trigger pull by the player. Burst children and enemy
// shots are not counted.
func (f *Frame) fired() {
	if f.stats != nil {
		f.stats.ShotsFired++
	}
}

// spawnQueue holds projectiles created during a step until the next merge.
type spawnQueue struct {
	friendly []*Projectile
	enemy    []*Projectile
}

func (q *spawnQueue) push(p *Projectile) {
	if p.FiredByPlayer {
		q.friendly = append(q.friendly, p)
		return
	}
	q.enemy = append(q.enemy, p)
}

func (q *spawnQueue) len() int {
	return len(q.friendly) + len(q.enemy)
}

// drain hands back both queues and leaves them empty.
func (q *spawnQueue) drain() (friendly, enemy []*Projectile) {
	friendly, enemy = q.friendly, q.enemy
	q.friendly, q.enemy = nil, nil
	return friendly, enemy
}
