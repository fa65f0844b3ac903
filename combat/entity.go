package combat

// Entity is a GameObject with health and contact damage.
type Entity struct {
	GameObject
	Health     int
	MaxHealth  int
	SlamDamage int
}

// TakeDamage subtracts amount from health. Health may go negative.
func (e *Entity) TakeDamage(amount int) {
	e.Health -= amount
}

func (e *Entity) Alive() bool {
	return e.Health > 0
}

// HealthRatio returns health/maxHealth, or zero when maxHealth is zero.
func (e *Entity) HealthRatio() float64 {
	if e.MaxHealth == 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// BehaviorModel holds the per-frame probabilities and goal biases that give
// an enemy archetype its personality. Values are shared read-only between
// every enemy of the archetype.
type BehaviorModel struct {
	MovementGoalChange float64
	SpeedChange        float64
	ShootChance        float64
	PlayerBias         float64
	CenterBias         float64
}

var (
	// DefaultBehavior wanders around the center and keeps some distance from the player.
	DefaultBehavior = BehaviorModel{
		MovementGoalChange: 0.02,
		SpeedChange:        0.01,
		ShootChance:        0.02,
		PlayerBias:         -100,
		CenterBias:         100,
	}
	// TacklerBehavior never shoots and charges at the player.
	TacklerBehavior = BehaviorModel{
		MovementGoalChange: 0.02,
		SpeedChange:        0.01,
		ShootChance:        0,
		PlayerBias:         500,
		CenterBias:         100,
	}
	// ScaredBehavior keeps well away from the player and snipes.
	ScaredBehavior = BehaviorModel{
		MovementGoalChange: 0.03,
		SpeedChange:        0.02,
		ShootChance:        0.015,
		PlayerBias:         -300,
		CenterBias:         50,
	}
)

// StatModel fixes an archetype's combat stats.
type StatModel struct {
	BaseSpeed        float64
	MaxSpeed         float64
	MinSpeed         float64
	ProjectileSpeed  float64
	ProjectileDamage int
	SlamDamage       int
	MaxHealth        int
	Size             float64
}
