package combat

// PlayerConfig contains player movement, health and weapon values.
type PlayerConfig struct {
	Size         float64
	MaxHealth    int
	Acceleration float64 // velocity gained per second of held direction
	Damping      float64 // velocity /= 1 + Damping*dt
	Immunity     float64 // seconds of damage immunity after a hit

	// Primary weapon: straight shot upward
	FireCooldown float64
	ShotSpeed    float64
	ShotDamage   int

	// Alt weapon: multi-target homing shot
	AltFireCooldown float64
	AltShotSpeed    float64
	AltShotDamage   int
	AltShotLifetime float64
	AltShotChildren int
}

// ProjectileConfig contains values shared by every projectile kind.
type ProjectileConfig struct {
	Size        float64
	HomingSize  float64
	ChildRadius float64 // ring radius children spawn on around an explosion
	BlinkWindow float64 // final seconds of a homing shot's life spent blinking
	BlinkRate   float64 // blinks per second while in the window
}

// EnemyConfig contains AI tuning shared by regular enemies.
type EnemyConfig struct {
	SpeedJitter    float64 // scale of a speed perturbation
	HomingLifetime float64 // lifetime of a tracing enemy's shot
}

// BossConfig contains the boss phase machine tuning.
type BossConfig struct {
	PhaseFlipChance float64 // per-frame probability of flipping phase
	PhaseCooldown   float64 // seconds after a flip during which no flip happens
	EaseRate        float64

	// Phase A: orbit above the center, homing rings
	OrbitRadius       float64
	OrbitAngularSpeed float64
	OrbitOffsetY      float64
	IntervalA         float64
	RingCap           int
	ShotLifetimeA     float64

	// Phase B: horizontal sweep, aimed rings
	SweepAmplitude    float64
	SweepAngularSpeed float64
	IntervalB         float64
	RingCountB        int
	RingPaddingB      float64
	SpeedScaleB       float64

	// Death nova
	NovaCount    int
	NovaMaxFuse  float64
	NovaChildren int
}

// CollisionConfig contains contact resolution values.
type CollisionConfig struct {
	EnemyShotDamage int
	Knockback       float64
	BroadphaseCell  int
}

// Config bundles every tunable the simulation reads. It is built once at the
// composition root and handed to NewSimulation.
type Config struct {
	Player     PlayerConfig
	Projectile ProjectileConfig
	Enemy      EnemyConfig
	Boss       BossConfig
	Collision  CollisionConfig
	WaveDelay  float64 // seconds the arena must stay empty before the next wave
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Size:         12,
			MaxHealth:    100,
			Acceleration: 2500,
			Damping:      5,
			Immunity:     0.1,

			FireCooldown: 0.2,
			ShotSpeed:    500,
			ShotDamage:   10,

			AltFireCooldown: 1,
			AltShotSpeed:    350,
			AltShotDamage:   20,
			AltShotLifetime: 3,
			AltShotChildren: 8,
		},
		Projectile: ProjectileConfig{
			Size:        5,
			HomingSize:  4,
			ChildRadius: 4,
			BlinkWindow: 1,
			BlinkRate:   10,
		},
		Enemy: EnemyConfig{
			SpeedJitter:    20,
			HomingLifetime: 5,
		},
		Boss: BossConfig{
			PhaseFlipChance: 1.0 / 300,
			PhaseCooldown:   5,
			EaseRate:        0.5,

			OrbitRadius:       100,
			OrbitAngularSpeed: 1,
			OrbitOffsetY:      150,
			IntervalA:         1.1,
			RingCap:           32,
			ShotLifetimeA:     0.5,

			SweepAmplitude:    150,
			SweepAngularSpeed: 0.6,
			IntervalB:         0.4,
			RingCountB:        32,
			RingPaddingB:      10,
			SpeedScaleB:       4.5,

			NovaCount:    32,
			NovaMaxFuse:  3,
			NovaChildren: 14,
		},
		Collision: CollisionConfig{
			EnemyShotDamage: 5,
			Knockback:       20,
			BroadphaseCell:  32,
		},
		WaveDelay: 1,
	}
}
