// Package combat is the frame-stepped combat core: the player, enemies,
// projectiles, the boss phase machine, and the wave coordinator, tied
// together by Simulation.Step.
package combat

import (
	"log/slog"
	"math/rand/v2"

	"github.com/automoto/shmup/shared/gamemath"
)

// Status is the match outcome as seen after the latest step.
type Status int

const (
	Running Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "running"
}

// Stats are running counters for the HUD and the headless runner.
type Stats struct {
	Frames      int
	Elapsed     float64
	Kills       int
	ShotsFired  int
	DamageTaken int
}

// Options configures NewSimulation. Zero fields fall back to defaults.
type Options struct {
	Arena  Arena
	Config *Config
	Player *Player
	Level  *Level
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Simulation owns the live pools and the pending spawn queues.
type Simulation struct {
	arena Arena
	cfg   *Config
	rng   *rand.Rand
	log   *slog.Logger

	player   *Player
	enemies  []*Enemy
	friendly []*Projectile
	hostile  []*Projectile
	queue    spawnQueue
	level    *Level
	broad    *broadphase

	stats Stats
	ended bool
}

func NewSimulation(opts Options) *Simulation {
	if opts.Arena.Width <= 0 || opts.Arena.Height <= 0 {
		opts.Arena = Arena{Width: 800, Height: 600}
	}
	if opts.Config == nil {
		cfg := DefaultConfig()
		opts.Config = &cfg
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Player == nil {
		opts.Player = NewPlayer(PlayerStart(opts.Arena), opts.Config.Player)
	}
	if opts.Level == nil {
		opts.Level = NewLevel(nil, opts.Config.WaveDelay)
	}
	return &Simulation{
		arena:  opts.Arena,
		cfg:    opts.Config,
		rng:    opts.Rand,
		log:    opts.Logger,
		player: opts.Player,
		level:  opts.Level,
		broad:  newBroadphase(opts.Arena, opts.Config.Collision.BroadphaseCell),
	}
}

// Step advances the match by dt: purge, merge queued spawns, input, movement,
// collisions, then the wave coordinator.
func (s *Simulation) Step(in Input, dt float64) {
	f := s.frame(dt)

	s.purge()
	s.merge()

	s.player.ApplyInput(in, f)
	for _, p := range s.hostile {
		p.Update(f)
	}
	for _, p := range s.friendly {
		p.Update(f)
	}
	s.player.Update(f)
	for _, e := range s.enemies {
		e.Update(f)
	}

	s.resolveCollisions(f)

	if s.ActiveEnemies() == 0 {
		if wave := s.level.Advance(dt); wave != nil {
			s.enemies = append(s.enemies, wave...)
			s.log.Info("wave spawned", "wave", s.level.WaveInfo(), "enemies", len(wave))
		}
	}

	s.stats.Frames++
	s.stats.Elapsed += dt
	if st := s.Status(); st != Running && !s.ended {
		s.ended = true
		s.log.Info("match over",
			"status", st.String(),
			"elapsed", s.stats.Elapsed,
			"kills", s.stats.Kills,
			"health", s.player.Health)
	}
}

func (s *Simulation) frame(dt float64) *Frame {
	return &Frame{
		DT:      dt,
		Rand:    s.rng,
		Arena:   s.arena,
		Player:  s.player,
		Config:  s.cfg,
		Log:     s.log,
		Targets: s.targets,
		queue:   &s.queue,
		stats:   &s.stats,
	}
}

// purge drops every inactive object from the live pools.
func (s *Simulation) purge() {
	s.enemies = filterActive(s.enemies)
	s.friendly = filterActive(s.friendly)
	s.hostile = filterActive(s.hostile)
}

// merge moves queued spawns into their pools.
func (s *Simulation) merge() {
	friendly, hostile := s.queue.drain()
	s.friendly = append(s.friendly, friendly...)
	s.hostile = append(s.hostile, hostile...)
}

func filterActive[T interface{ Active() bool }](pool []T) []T {
	kept := pool[:0]
	for _, o := range pool {
		if o.Active() {
			kept = append(kept, o)
		}
	}
	clear(pool[len(kept):])
	return kept
}

// targets yields the live enemy pool as homing candidates.
func (s *Simulation) targets(yield func(Target) bool) {
	for _, e := range s.enemies {
		if !yield(e) {
			return
		}
	}
}

// SpawnProjectile queues p for the next step.
func (s *Simulation) SpawnProjectile(p *Projectile) {
	s.queue.push(p)
}

// SpawnEnemy inserts e into the live pool. Call it between steps only.
func (s *Simulation) SpawnEnemy(e *Enemy) {
	s.enemies = append(s.enemies, e)
}

// Status reports the outcome. A match is only over once no enemy shot is in
// flight or queued.
func (s *Simulation) Status() Status {
	if s.enemyShotsLive() {
		return Running
	}
	if !s.player.Alive() {
		return Lost
	}
	if s.level.Completed() && s.ActiveEnemies() == 0 {
		return Won
	}
	return Running
}

func (s *Simulation) enemyShotsLive() bool {
	if len(s.queue.enemy) > 0 {
		return true
	}
	for _, p := range s.hostile {
		if p.Active() {
			return true
		}
	}
	return false
}

// ActiveEnemies counts enemies still in play.
func (s *Simulation) ActiveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

// Draw renders active objects: projectiles, then the player, then enemies.
func (s *Simulation) Draw(r Renderer) {
	for _, p := range s.hostile {
		if p.Active() {
			p.Draw(r)
		}
	}
	for _, p := range s.friendly {
		if p.Active() {
			p.Draw(r)
		}
	}
	if s.player.Active() {
		s.player.Draw(r)
	}
	for _, e := range s.enemies {
		if e.Active() {
			e.Draw(r)
		}
	}
}

func (s *Simulation) Player() *Player { return s.player }

func (s *Simulation) Level() *Level { return s.level }

func (s *Simulation) Arena() Arena { return s.arena }

func (s *Simulation) Stats() Stats { return s.stats }

// Enemies returns the live enemy pool. The slice must not be modified.
func (s *Simulation) Enemies() []*Enemy { return s.enemies }

// FriendlyProjectiles returns the live friendly pool. The slice must not be modified.
func (s *Simulation) FriendlyProjectiles() []*Projectile { return s.friendly }

// EnemyProjectiles returns the live enemy shot pool. The slice must not be modified.
func (s *Simulation) EnemyProjectiles() []*Projectile { return s.hostile }

// Pending returns the number of queued projectiles.
func (s *Simulation) Pending() int { return s.queue.len() }

// PlayerStart is the default spawn point near the bottom of the arena.
func PlayerStart(a Arena) gamemath.Vec {
	return gamemath.V(a.Width/2, a.Height*0.8)
}
